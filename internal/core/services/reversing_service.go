package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/quietbooks/quietbooks/internal/apperrors"
	"github.com/quietbooks/quietbooks/internal/core/domain"
	portsrepo "github.com/quietbooks/quietbooks/internal/core/ports/repositories"
	portssvc "github.com/quietbooks/quietbooks/internal/core/ports/services"
	"github.com/quietbooks/quietbooks/internal/dto"
)

// reversingService implements ReversingSvcFacade. Queued reversals post
// as exact mirrors of their original entries once they fall due.
type reversingService struct {
	BaseService
	reversingRepo portsrepo.ReversingRepositoryFacade
	journalRepo   portsrepo.JournalRepositoryFacade
	periodRepo    portsrepo.PeriodRepositoryFacade
	auditRepo     portsrepo.AuditRepositoryFacade
	posting       portssvc.PostingWriterSvc
	notifier      portssvc.CycleNotifier
}

// NewReversingService creates a new reversing service. notifier may be nil.
func NewReversingService(
	reversingRepo portsrepo.ReversingRepositoryFacade,
	journalRepo portsrepo.JournalRepositoryFacade,
	periodRepo portsrepo.PeriodRepositoryFacade,
	auditRepo portsrepo.AuditRepositoryFacade,
	posting portssvc.PostingWriterSvc,
	notifier portssvc.CycleNotifier,
) portssvc.ReversingSvcFacade {
	return &reversingService{
		reversingRepo: reversingRepo,
		journalRepo:   journalRepo,
		periodRepo:    periodRepo,
		auditRepo:     auditRepo,
		posting:       posting,
		notifier:      notifier,
	}
}

func (s *reversingService) ProcessSchedule(ctx context.Context, asOf time.Time, postedBy string) ([]string, error) {
	pending := domain.ReversalPending
	due, err := s.reversingRepo.ListQueue(ctx, &pending, &asOf)
	if err != nil {
		return nil, err
	}
	if len(due) == 0 {
		return nil, nil
	}

	period, err := ensureCurrentPeriod(ctx, s.periodRepo)
	if err != nil {
		return nil, err
	}

	var posted []string
	for _, item := range due {
		entryID, err := s.reverseOne(ctx, item, period.PeriodID, postedBy)
		if err != nil {
			if errors.Is(err, apperrors.ErrConflict) {
				s.LogWarn(ctx, "Reversal already posted", "itemID", item.ItemID)
				continue
			}
			return posted, err
		}
		posted = append(posted, entryID)
	}

	if len(posted) > 0 {
		s.LogInfo(ctx, "Reversing entries posted", "count", len(posted), "asOf", asOf.Format(dateLayout))
		if s.notifier != nil {
			if err := s.notifier.ReversalsPosted(ctx, period.PeriodID, len(posted)); err != nil {
				s.LogWarn(ctx, "Cycle notification failed", "error", err)
			}
		}
	}
	return posted, nil
}

func (s *reversingService) ListQueue(ctx context.Context) ([]domain.ReversingQueueItem, error) {
	return s.reversingRepo.ListQueue(ctx, nil, nil)
}

// reverseOne posts the mirror of one original entry and marks the queue
// item Posted. The mark is the exactly-once gate; a conflicting mark
// surfaces as apperrors.ErrConflict.
func (s *reversingService) reverseOne(ctx context.Context, item domain.ReversingQueueItem, periodID, postedBy string) (string, error) {
	original, err := s.journalRepo.FindEntryByID(ctx, item.OriginalEntryID)
	if err != nil {
		return "", fmt.Errorf("original entry %s: %w", item.OriginalEntryID, err)
	}
	lines, err := s.journalRepo.FindLinesByEntryID(ctx, item.OriginalEntryID)
	if err != nil {
		return "", err
	}
	if len(lines) == 0 {
		return "", fmt.Errorf("%w: original entry %s has no lines", apperrors.ErrInvariantViolation, item.OriginalEntryID)
	}

	reqLines := make([]dto.EntryLineRequest, 0, len(lines))
	for _, ln := range lines {
		m := ln.Mirrored()
		reqLines = append(reqLines, dto.EntryLineRequest{
			AccountID: m.AccountID,
			Debit:     m.Debit,
			Credit:    m.Credit,
		})
	}

	entry, err := s.posting.RecordEntry(ctx, dto.RecordEntryRequest{
		Date:        item.ReverseOn.Format(dateLayout),
		Description: fmt.Sprintf("Reversing entry for #%s", original.EntryID),
		Status:      domain.Posted,
		IsReversing: true,
		SourceType:  "reversing_schedule",
		PeriodID:    periodID,
		CreatedBy:   postedBy,
		Lines:       reqLines,
	})
	if err != nil {
		return "", err
	}

	if err := s.reversingRepo.MarkPosted(ctx, item.ItemID, entry.EntryID); err != nil {
		return "", err
	}
	if s.auditRepo != nil {
		audit := newAuditRecord(postedBy, domain.AuditReversalPosted, map[string]any{
			"itemID":          item.ItemID,
			"originalEntryID": item.OriginalEntryID,
			"reversedEntryID": entry.EntryID,
		})
		if err := s.auditRepo.AppendAuditLog(ctx, audit); err != nil {
			s.LogWarn(ctx, "Failed to append audit record", "itemID", item.ItemID, "error", err)
		}
	}
	return entry.EntryID, nil
}
