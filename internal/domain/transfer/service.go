package transfer

import (
	"context"

	"github.com/bedboard/bedboard/internal/domain/admission"
	"github.com/bedboard/bedboard/internal/domain/bed"
	"github.com/bedboard/bedboard/internal/platform/apperr"
	"github.com/bedboard/bedboard/internal/platform/db"
	"github.com/bedboard/bedboard/internal/platform/events"
)

// Service coordinates transfer requests with the bed registry and the
// admission ledger. Every multi-entity write runs inside a single
// transaction via tx; the repositories pick the transaction up from the
// context.
type Service struct {
	requests   Repository
	beds       bed.Repository
	admissions admission.Repository
	tx         db.TxRunner
	notifier   events.Publisher
}

func NewService(requests Repository, beds bed.Repository, admissions admission.Repository, tx db.TxRunner, notifier events.Publisher) *Service {
	return &Service{
		requests:   requests,
		beds:       beds,
		admissions: admissions,
		tx:         tx,
		notifier:   notifier,
	}
}

func (s *Service) Create(ctx context.Context, r *Request) error {
	if r.PatientName == "" {
		return apperr.E(apperr.KindValidation, "patient_name is required")
	}
	if r.FromWard == "" {
		return apperr.E(apperr.KindValidation, "from_ward is required")
	}
	if r.RequiredSpecialty == "" {
		return apperr.E(apperr.KindValidation, "required_specialty is required")
	}
	if r.Priority == "" {
		r.Priority = PriorityLow
	}
	if !ValidPriority(r.Priority) {
		return apperr.Errorf(apperr.KindValidation, "invalid priority: %s", r.Priority)
	}
	r.Status = StatusPending
	if err := s.requests.Create(ctx, r); err != nil {
		return err
	}
	_ = s.notifier.Publish(ctx, events.TransfersUpdated())
	return nil
}

func (s *Service) List(ctx context.Context, status string) ([]*Request, error) {
	return s.requests.List(ctx, status)
}

// Decide applies the terminal PENDING -> {APPROVED, REJECTED} transition.
// Approving with an assigned bed also marks that bed OCCUPIED and opens an
// admission for the patient, all inside one transaction: either every write
// lands or none do. Returns the updated request and a description of the
// automation that ran.
func (s *Service) Decide(ctx context.Context, requestID int, newStatus string, assignedBedID *int) (*Request, string, error) {
	if !ValidDecision(newStatus) {
		return nil, "", apperr.Errorf(apperr.KindValidation, "invalid status: %s", newStatus)
	}

	var (
		updated    *Request
		automation = "None"
		bedChanged bool
	)
	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		current, err := s.requests.GetByID(ctx, requestID)
		if err != nil {
			return err
		}
		if current.Status != StatusPending {
			return apperr.Errorf(apperr.KindConflict, "transfer request %d already %s", requestID, current.Status)
		}

		updated, err = s.requests.UpdateStatus(ctx, requestID, newStatus)
		if err != nil {
			return err
		}

		if newStatus == StatusApproved && assignedBedID != nil {
			if _, err := s.beds.UpdateStatus(ctx, *assignedBedID, bed.StatusOccupied); err != nil {
				return err
			}
			if _, err := s.admissions.Open(ctx, *assignedBedID, current.PatientName); err != nil {
				return err
			}
			automation = "Target bed marked as OCCUPIED"
			bedChanged = true
		}
		return nil
	})
	if err != nil {
		return nil, "", err
	}

	_ = s.notifier.Publish(ctx, events.TransfersUpdated())
	if bedChanged {
		_ = s.notifier.Publish(ctx, events.BedsUpdated())
	}
	return updated, automation, nil
}

// ChangeBedStatus updates a bed's status and keeps the admission ledger in
// sync: moving to OCCUPIED with a patient name opens an admission, moving to
// CLEANING or AVAILABLE discharges the open one. Both writes commit together.
func (s *Service) ChangeBedStatus(ctx context.Context, bedID int, newStatus, patientName string) error {
	if !bed.ValidStatus(newStatus) {
		return apperr.Errorf(apperr.KindValidation, "invalid status: %s", newStatus)
	}

	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		if _, err := s.beds.UpdateStatus(ctx, bedID, newStatus); err != nil {
			return err
		}
		switch {
		case newStatus == bed.StatusOccupied && patientName != "":
			_, err := s.admissions.Open(ctx, bedID, patientName)
			return err
		case newStatus == bed.StatusCleaning || newStatus == bed.StatusAvailable:
			return s.admissions.CloseOpen(ctx, bedID)
		}
		return nil
	})
	if err != nil {
		return err
	}

	_ = s.notifier.Publish(ctx, events.BedsUpdated())
	return nil
}

// TransferPatient moves a patient between beds: the source admission is
// discharged and the source bed set to CLEANING, then a new admission opens
// on the target bed, which becomes OCCUPIED. All four writes succeed or none
// do.
func (s *Service) TransferPatient(ctx context.Context, sourceBedID, targetBedID int, patientName string) error {
	if sourceBedID == 0 || targetBedID == 0 {
		return apperr.E(apperr.KindValidation, "Source and Target Bed IDs required.")
	}
	if patientName == "" {
		return apperr.E(apperr.KindValidation, "patient_name is required")
	}

	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		if err := s.admissions.CloseOpen(ctx, sourceBedID); err != nil {
			return err
		}
		if _, err := s.beds.UpdateStatus(ctx, sourceBedID, bed.StatusCleaning); err != nil {
			return err
		}
		if _, err := s.admissions.Open(ctx, targetBedID, patientName); err != nil {
			return err
		}
		_, err := s.beds.UpdateStatus(ctx, targetBedID, bed.StatusOccupied)
		return err
	})
	if err != nil {
		return err
	}

	_ = s.notifier.Publish(ctx, events.BedsUpdated())
	return nil
}
