package service

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"time"

	"github.com/rs/zerolog"

	"github.com/barangaylink/records-system/internal/core/domain"
	"github.com/barangaylink/records-system/internal/core/ports"
)

const (
	defaultPageSize = 50
	maxPageSize     = 200
)

// ResidentService implements the resident registry use cases, including
// the paginated search and the CSV export.
type ResidentService struct {
	repo   ports.ResidentRepository
	audit  ports.AuditDispatcher
	logger zerolog.Logger
}

func NewResidentService(repo ports.ResidentRepository, audit ports.AuditDispatcher, logger zerolog.Logger) *ResidentService {
	return &ResidentService{repo: repo, audit: audit, logger: logger}
}

func (s *ResidentService) List(ctx context.Context, input ports.ListResidentsInput) (*ports.ListResidentsResult, error) {
	page := input.Page
	if page < 1 {
		page = 1
	}
	size := input.PageSize
	if size < 1 {
		size = defaultPageSize
	}
	if size > maxPageSize {
		size = maxPageSize
	}

	rows, count, err := s.repo.List(ctx, ports.ListResidentsFilter{
		Query:    input.Query,
		Page:     page,
		PageSize: size,
	})
	if err != nil {
		return nil, err
	}
	return &ports.ListResidentsResult{Rows: rows, Count: count}, nil
}

func (s *ResidentService) Get(ctx context.Context, id string) (*domain.Resident, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *ResidentService) Create(ctx context.Context, input ports.CreateResidentInput, actor string) (*domain.Resident, error) {
	if input.FirstName == "" || input.LastName == "" {
		return nil, domain.Validation("first_name and last_name required")
	}

	gender := input.Gender
	if gender == "" {
		gender = domain.GenderMale
	}
	civil := input.CivilStatus
	if civil == "" {
		civil = domain.CivilSingle
	}

	now := time.Now().UTC()
	created, err := s.repo.Create(ctx, &domain.Resident{
		HouseholdID:   input.HouseholdID,
		FirstName:     input.FirstName,
		MiddleName:    input.MiddleName,
		LastName:      input.LastName,
		Suffix:        input.Suffix,
		BirthDate:     input.BirthDate,
		Address:       input.Address,
		Gender:        gender,
		CivilStatus:   civil,
		Occupation:    input.Occupation,
		ContactNumber: input.ContactNumber,
		Email:         input.Email,
		NationalID:    input.NationalID,
		VoterStatus:   input.VoterStatus,
		IsHead:        input.IsHead,
		Remarks:       input.Remarks,
		Status:        domain.RecordActive,
		CreatedAt:     now,
		UpdatedAt:     now,
	})
	if err != nil {
		return nil, err
	}

	s.record("create", created.ID, actor)
	return created, nil
}

func (s *ResidentService) Update(ctx context.Context, id string, input ports.UpdateResidentInput, actor string) (*domain.Resident, error) {
	r, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	applyResidentUpdate(r, input)
	r.UpdatedAt = time.Now().UTC()

	if err := s.repo.Update(ctx, r); err != nil {
		return nil, err
	}

	s.record("update", r.ID, actor)
	return r, nil
}

func (s *ResidentService) Delete(ctx context.Context, id string, actor string) error {
	if err := s.repo.SoftDelete(ctx, id); err != nil {
		return err
	}
	s.record("delete", id, actor)
	return nil
}

// exportHeader is the column order of the CSV export.
var exportHeader = []string{
	"id", "first_name", "middle_name", "last_name", "suffix", "birth_date",
	"gender", "civil_status", "address", "occupation", "contact_number",
	"email", "household",
}

// ExportCSV writes every active resident matching query to w. The
// household join object is flattened to the household code.
func (s *ResidentService) ExportCSV(ctx context.Context, query string, w io.Writer) error {
	rows, err := s.repo.ListAll(ctx, query)
	if err != nil {
		return err
	}

	cw := csv.NewWriter(w)
	if err := cw.Write(exportHeader); err != nil {
		return fmt.Errorf("export residents: %w", err)
	}

	for _, r := range rows {
		household := ""
		if r.Household != nil {
			household = r.Household.HouseholdCode
		}
		record := []string{
			r.ID, r.FirstName, r.MiddleName, r.LastName, r.Suffix, r.BirthDate,
			string(r.Gender), string(r.CivilStatus), r.Address, r.Occupation,
			r.ContactNumber, r.Email, household,
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("export residents: %w", err)
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("export residents: %w", err)
	}

	s.logger.Info().Int("rows", len(rows)).Str("query", query).Msg("residents exported")
	return nil
}

func applyResidentUpdate(r *domain.Resident, in ports.UpdateResidentInput) {
	if in.HouseholdID != nil {
		r.HouseholdID = *in.HouseholdID
	}
	if in.FirstName != nil && *in.FirstName != "" {
		r.FirstName = *in.FirstName
	}
	if in.MiddleName != nil {
		r.MiddleName = *in.MiddleName
	}
	if in.LastName != nil && *in.LastName != "" {
		r.LastName = *in.LastName
	}
	if in.Suffix != nil {
		r.Suffix = *in.Suffix
	}
	if in.BirthDate != nil {
		r.BirthDate = *in.BirthDate
	}
	if in.Address != nil {
		r.Address = *in.Address
	}
	if in.Gender != nil {
		r.Gender = *in.Gender
	}
	if in.CivilStatus != nil {
		r.CivilStatus = *in.CivilStatus
	}
	if in.Occupation != nil {
		r.Occupation = *in.Occupation
	}
	if in.ContactNumber != nil {
		r.ContactNumber = *in.ContactNumber
	}
	if in.Email != nil {
		r.Email = *in.Email
	}
	if in.NationalID != nil {
		r.NationalID = *in.NationalID
	}
	if in.VoterStatus != nil {
		r.VoterStatus = *in.VoterStatus
	}
	if in.IsHead != nil {
		r.IsHead = *in.IsHead
	}
	if in.Remarks != nil {
		r.Remarks = *in.Remarks
	}
}

func (s *ResidentService) record(action, entityID, actor string) {
	if s.audit == nil {
		return
	}
	s.audit.Enqueue(ports.ActivityInput{
		Action:      action,
		Entity:      "resident",
		EntityID:    entityID,
		PerformedBy: actor,
	})
}
