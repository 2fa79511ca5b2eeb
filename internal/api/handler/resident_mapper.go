package handler

import (
	"github.com/barangaylink/records-system/internal/core/domain"
	"github.com/barangaylink/records-system/internal/core/ports"
)

// --- Request → Service input ---

func toCreateResidentInput(req residentRequest) ports.CreateResidentInput {
	return ports.CreateResidentInput{
		HouseholdID:   req.HouseholdID,
		FirstName:     req.FirstName,
		MiddleName:    req.MiddleName,
		LastName:      req.LastName,
		Suffix:        req.Suffix,
		BirthDate:     req.BirthDate,
		Address:       req.Address,
		Gender:        domain.Gender(req.Gender),
		CivilStatus:   domain.CivilStatus(req.CivilStatus),
		Occupation:    req.Occupation,
		ContactNumber: req.ContactNumber,
		Email:         req.Email,
		NationalID:    req.NationalID,
		VoterStatus:   req.VoterStatus,
		IsHead:        req.IsHead,
		Remarks:       req.Remarks,
	}
}

func toUpdateResidentInput(req updateResidentRequest) ports.UpdateResidentInput {
	in := ports.UpdateResidentInput{
		HouseholdID:   req.HouseholdID,
		FirstName:     req.FirstName,
		MiddleName:    req.MiddleName,
		LastName:      req.LastName,
		Suffix:        req.Suffix,
		BirthDate:     req.BirthDate,
		Address:       req.Address,
		Occupation:    req.Occupation,
		ContactNumber: req.ContactNumber,
		Email:         req.Email,
		NationalID:    req.NationalID,
		VoterStatus:   req.VoterStatus,
		IsHead:        req.IsHead,
		Remarks:       req.Remarks,
	}
	if req.Gender != nil {
		g := domain.Gender(*req.Gender)
		in.Gender = &g
	}
	if req.CivilStatus != nil {
		cs := domain.CivilStatus(*req.CivilStatus)
		in.CivilStatus = &cs
	}
	return in
}
