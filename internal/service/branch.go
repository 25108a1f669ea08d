package service

import (
	"context"
	"database/sql"
	"errors"

	"car-rental-backend/internal/domain"
	"car-rental-backend/internal/repository"
)

type branchService struct {
	store repository.Store
}

func NewBranchService(store repository.Store) BranchService {
	return &branchService{store: store}
}

// nameAvailable reports whether the branch name is free for the given ID.
func (s *branchService) nameAvailable(ctx context.Context, name string, id int32) (bool, error) {
	existing, err := s.store.Branches().GetByName(ctx, name)
	if errors.Is(err, sql.ErrNoRows) {
		return true, nil
	}
	if err != nil {
		return false, err
	}
	return existing.ID == id, nil
}

func (s *branchService) AddBranch(ctx context.Context, b *domain.Branch) error {
	ok, err := s.nameAvailable(ctx, b.BranchName, 0)
	if err != nil {
		return err
	}
	if !ok {
		return ErrBranchNameTaken
	}
	return s.store.Branches().Create(ctx, b)
}

func (s *branchService) GetBranch(ctx context.Context, id int32) (*domain.Branch, error) {
	b, err := s.store.Branches().GetByID(ctx, id)
	if err != nil {
		return nil, notFound(err, ErrBranchNotFound)
	}
	return b, nil
}

func (s *branchService) ListBranches(ctx context.Context) ([]domain.Branch, error) {
	return s.store.Branches().List(ctx)
}

func (s *branchService) UpdateBranch(ctx context.Context, b *domain.Branch) (*domain.Branch, error) {
	if _, err := s.store.Branches().GetByID(ctx, b.ID); err != nil {
		return nil, notFound(err, ErrBranchNotFound)
	}
	ok, err := s.nameAvailable(ctx, b.BranchName, b.ID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrBranchNameTaken
	}
	if err := s.store.Branches().Update(ctx, b); err != nil {
		return nil, err
	}
	return b, nil
}

func (s *branchService) DeleteBranch(ctx context.Context, id int32) error {
	if _, err := s.store.Branches().GetByID(ctx, id); err != nil {
		return notFound(err, ErrBranchNotFound)
	}
	return s.store.Branches().Delete(ctx, id)
}
