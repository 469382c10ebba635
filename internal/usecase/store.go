package usecase

import (
	"hireboard/internal/domain/agency"
	"hireboard/internal/domain/candidate"
	"hireboard/internal/domain/contact"
	"hireboard/internal/domain/employer"
	"hireboard/internal/domain/interview"
	"hireboard/internal/domain/job"
	"hireboard/internal/repository"
	"hireboard/internal/seeder"
)

// Store holds the in-memory collections for the lifetime of the process.
type Store struct {
	Candidates *repository.Collection[candidate.Candidate]
	Jobs       *repository.Collection[job.Job]
	Employers  *repository.Collection[employer.Employer]
	Agencies   *repository.Collection[agency.Agency]
	Contacts   *repository.Collection[contact.Contact]
	Interviews *repository.Collection[interview.Interview]
}

func NewStore(ds *seeder.Dataset) *Store {
	if ds == nil {
		ds = &seeder.Dataset{}
	}
	return &Store{
		Candidates: repository.NewCollection(CandidateDescriptor.ID, ds.Candidates),
		Jobs:       repository.NewCollection(JobDescriptor.ID, ds.Jobs),
		Employers:  repository.NewCollection(EmployerDescriptor.ID, ds.Employers),
		Agencies:   repository.NewCollection(AgencyDescriptor.ID, ds.Agencies),
		Contacts:   repository.NewCollection(ContactDescriptor.ID, ds.Contacts),
		Interviews: repository.NewCollection(InterviewDescriptor.ID, ds.Interviews),
	}
}
