package service

import (
	"context"

	"portfolio/internal/models"
	"portfolio/internal/repository"
)

// ProfileService implements profile CRUD. A user may have at most one profile;
// the unique index on user_id enforces it.
type ProfileService struct {
	profileRepo repository.ProfileRepository
}

// CreateProfileInput is the payload for creating a profile.
type CreateProfileInput struct {
	UserID     uint
	Title      string
	Bio        *string
	Avatar     *string
	Phone      *string
	Location   *string
	Github     *string
	Linkedin   *string
	Skills     []string
	Experience []string
}

// UpdateProfileInput carries the optional fields of a profile update.
type UpdateProfileInput struct {
	Title      *string
	Bio        *string
	Avatar     *string
	Phone      *string
	Location   *string
	Github     *string
	Linkedin   *string
	Skills     *[]string
	Experience *[]string
}

// NewProfileService returns a new ProfileService.
func NewProfileService(profileRepo repository.ProfileRepository) *ProfileService {
	return &ProfileService{profileRepo: profileRepo}
}

func (s *ProfileService) CreateProfile(ctx context.Context, in CreateProfileInput) (*models.Profile, error) {
	profile := &models.Profile{
		UserID:     in.UserID,
		Title:      in.Title,
		Bio:        in.Bio,
		Avatar:     in.Avatar,
		Phone:      in.Phone,
		Location:   in.Location,
		Github:     in.Github,
		Linkedin:   in.Linkedin,
		Skills:     in.Skills,
		Experience: in.Experience,
	}
	if profile.Skills == nil {
		profile.Skills = []string{}
	}
	if profile.Experience == nil {
		profile.Experience = []string{}
	}
	if err := s.profileRepo.Create(ctx, profile); err != nil {
		return nil, err
	}
	return profile, nil
}

func (s *ProfileService) GetProfile(ctx context.Context, id uint) (*models.Profile, error) {
	return s.profileRepo.GetByID(ctx, id)
}

func (s *ProfileService) ListProfiles(ctx context.Context, limit, offset int) ([]models.Profile, error) {
	return s.profileRepo.List(ctx, limit, offset)
}

func (s *ProfileService) UpdateProfile(ctx context.Context, id uint, in UpdateProfileInput) (*models.Profile, error) {
	profile, err := s.profileRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if in.Title != nil {
		profile.Title = *in.Title
	}
	if in.Bio != nil {
		profile.Bio = in.Bio
	}
	if in.Avatar != nil {
		profile.Avatar = in.Avatar
	}
	if in.Phone != nil {
		profile.Phone = in.Phone
	}
	if in.Location != nil {
		profile.Location = in.Location
	}
	if in.Github != nil {
		profile.Github = in.Github
	}
	if in.Linkedin != nil {
		profile.Linkedin = in.Linkedin
	}
	if in.Skills != nil {
		profile.Skills = *in.Skills
	}
	if in.Experience != nil {
		profile.Experience = *in.Experience
	}

	if err := s.profileRepo.Update(ctx, profile); err != nil {
		return nil, err
	}
	return profile, nil
}

// DeleteProfile removes a profile after verifying it exists.
func (s *ProfileService) DeleteProfile(ctx context.Context, id uint) error {
	if _, err := s.profileRepo.GetByID(ctx, id); err != nil {
		return err
	}
	return s.profileRepo.Delete(ctx, id)
}
