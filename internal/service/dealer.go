package service

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"time"

	"go.uber.org/zap"
	"gorm.io/datatypes"

	"intelliwheels/internal/geo"
	"intelliwheels/internal/hydrate"
	"intelliwheels/internal/models"
	"intelliwheels/internal/repository"
)

// DealerService serves dealer listing, lookup and profile self-service.
type DealerService struct {
	Repo            repository.Store
	Logger          *zap.Logger
	DefaultRadiusKm float64
	MaxReviews      int
}

// ListDealers returns verified dealers. With query coordinates the result is
// proximity-filtered and sorted by distance; without them it is the full
// verified set sorted by rating (the repository's order). A nil radius means
// the caller supplied none and the default applies; an explicit radius is
// honored as given, including zero.
func (s *DealerService) ListDealers(ctx context.Context, lat, lng, radiusKm *float64) ([]DealerView, error) {
	dealers, err := s.Repo.ListVerifiedDealers(ctx)
	if err != nil {
		return nil, err
	}
	views := make([]DealerView, 0, len(dealers))
	for _, d := range dealers {
		views = append(views, newDealerView(d, s.Logger))
	}
	if lat == nil || lng == nil {
		return views, nil
	}
	radius := s.DefaultRadiusKm
	if radiusKm != nil {
		radius = *radiusKm
	}
	return filterByProximity(views, *lat, *lng, radius), nil
}

// filterByProximity keeps dealers with coordinates within radiusKm of the
// query point, annotates each with its rounded distance, and sorts ascending
// by distance. The sort is stable so equidistant dealers keep their relative
// order. Dealers without both coordinates never appear in the result.
func filterByProximity(dealers []DealerView, lat, lng, radiusKm float64) []DealerView {
	nearby := make([]DealerView, 0, len(dealers))
	for _, d := range dealers {
		if d.Latitude == nil || d.Longitude == nil {
			continue
		}
		distance := geo.DistanceKm(lat, lng, *d.Latitude, *d.Longitude)
		if distance > radiusKm {
			continue
		}
		rounded := geo.RoundKm(distance)
		d.DistanceKm = &rounded
		nearby = append(nearby, d)
	}
	sort.SliceStable(nearby, func(i, j int) bool {
		return *nearby[i].DistanceKm < *nearby[j].DistanceKm
	})
	return nearby
}

// GetDealer returns one dealer with hydrated fields, its inventory (cars
// owned by the dealer's user, newest first) and the reviews on that
// inventory (newest first, capped).
func (s *DealerService) GetDealer(ctx context.Context, id uint64) (DealerView, error) {
	dealer, err := s.Repo.GetDealerByID(ctx, id)
	if err != nil {
		return DealerView{}, err
	}
	if dealer == nil {
		return DealerView{}, ErrDealerNotFound
	}
	view := newDealerView(*dealer, s.Logger)
	view.Inventory = []CarView{}
	view.Reviews = []repository.ReviewWithUser{}
	if dealer.UserID == nil {
		return view, nil
	}

	inventory, err := s.Repo.ListCarsByOwner(ctx, *dealer.UserID)
	if err != nil {
		return DealerView{}, err
	}
	view.Inventory = newCarViews(inventory, s.Logger)

	maxReviews := s.MaxReviews
	if maxReviews <= 0 {
		maxReviews = 50
	}
	reviews, err := s.Repo.ListDealerReviews(ctx, *dealer.UserID, maxReviews)
	if err != nil {
		return DealerView{}, err
	}
	if reviews == nil {
		reviews = []repository.ReviewWithUser{}
	}
	view.Reviews = reviews
	return view, nil
}

// RegisterInput carries the fields a user supplies when registering as a
// dealer. Name, Location, ContactEmail and ContactPhone are required.
type RegisterInput struct {
	Name           string            `json:"name"`
	Location       string            `json:"location"`
	Latitude       *float64          `json:"latitude"`
	Longitude      *float64          `json:"longitude"`
	ContactEmail   string            `json:"contact_email"`
	ContactPhone   string            `json:"contact_phone"`
	Description    string            `json:"description"`
	ImageURL       string            `json:"image_url"`
	ShowroomImages []string          `json:"showroom_images"`
	BusinessHours  map[string]string `json:"business_hours"`
}

// Register creates an unverified dealer profile for a user without one.
func (s *DealerService) Register(ctx context.Context, userID uint64, input RegisterInput) (uint64, error) {
	existing, err := s.Repo.GetDealerByUserID(ctx, userID)
	if err != nil {
		return 0, err
	}
	if existing != nil {
		return 0, ErrProfileExists
	}

	required := map[string]string{
		"name":          input.Name,
		"location":      input.Location,
		"contact_email": input.ContactEmail,
		"contact_phone": input.ContactPhone,
	}
	for _, field := range []string{"name", "location", "contact_email", "contact_phone"} {
		if required[field] == "" {
			return 0, fmt.Errorf("%w: %s", ErrMissingField, field)
		}
	}

	dealer := models.Dealer{
		UserID:         &userID,
		Name:           input.Name,
		Location:       input.Location,
		Latitude:       input.Latitude,
		Longitude:      input.Longitude,
		ContactEmail:   input.ContactEmail,
		ContactPhone:   input.ContactPhone,
		Description:    input.Description,
		ImageURL:       input.ImageURL,
		Verified:       false, // requires admin verification
		ShowroomImages: encodeList(input.ShowroomImages),
		BusinessHours:  encodeMap(input.BusinessHours),
		CreatedAt:      time.Now().UTC(),
	}
	if err := s.Repo.CreateDealer(ctx, &dealer); err != nil {
		return 0, err
	}
	return dealer.ID, nil
}

// GetProfile returns the hydrated profile for the given user.
func (s *DealerService) GetProfile(ctx context.Context, userID uint64) (DealerView, error) {
	dealer, err := s.Repo.GetDealerByUserID(ctx, userID)
	if err != nil {
		return DealerView{}, err
	}
	if dealer == nil {
		return DealerView{}, ErrProfileNotFound
	}
	return newDealerView(*dealer, s.Logger), nil
}

// UpdateInput is a partial profile update; nil fields are left untouched.
type UpdateInput struct {
	Name           *string            `json:"name"`
	Location       *string            `json:"location"`
	Latitude       *float64           `json:"latitude"`
	Longitude      *float64           `json:"longitude"`
	ContactEmail   *string            `json:"contact_email"`
	ContactPhone   *string            `json:"contact_phone"`
	Description    *string            `json:"description"`
	ImageURL       *string            `json:"image_url"`
	ShowroomImages *[]string          `json:"showroom_images"`
	BusinessHours  *map[string]string `json:"business_hours"`
}

// UpdateProfile applies the supplied subset of mutable fields to the user's
// profile. Supplying nothing is a client error.
func (s *DealerService) UpdateProfile(ctx context.Context, userID uint64, input UpdateInput) error {
	dealer, err := s.Repo.GetDealerByUserID(ctx, userID)
	if err != nil {
		return err
	}
	if dealer == nil {
		return ErrProfileNotFound
	}

	fields := map[string]any{}
	if input.Name != nil {
		fields["name"] = *input.Name
	}
	if input.Location != nil {
		fields["location"] = *input.Location
	}
	if input.Latitude != nil {
		fields["latitude"] = *input.Latitude
	}
	if input.Longitude != nil {
		fields["longitude"] = *input.Longitude
	}
	if input.ContactEmail != nil {
		fields["contact_email"] = *input.ContactEmail
	}
	if input.ContactPhone != nil {
		fields["contact_phone"] = *input.ContactPhone
	}
	if input.Description != nil {
		fields["description"] = *input.Description
	}
	if input.ImageURL != nil {
		fields["image_url"] = *input.ImageURL
	}
	if input.ShowroomImages != nil {
		fields["showroom_images"] = encodeList(*input.ShowroomImages)
	}
	if input.BusinessHours != nil {
		fields["business_hours"] = encodeMap(*input.BusinessHours)
	}
	if len(fields) == 0 {
		return ErrNoFields
	}
	return s.Repo.UpdateDealerFields(ctx, dealer.ID, fields)
}

// AppendShowroomImage adds one image URL to the user's showroom gallery and
// returns the updated list. The stored gallery is decoded defensively, so a
// corrupt value resets to just the new image rather than failing.
func (s *DealerService) AppendShowroomImage(ctx context.Context, userID uint64, imageURL string) ([]string, error) {
	dealer, err := s.Repo.GetDealerByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if dealer == nil {
		return nil, ErrProfileNotFound
	}

	images := hydrate.StringList(dealer.ShowroomImages, "showroom_images", s.Logger)
	images = append(images, imageURL)
	err = s.Repo.UpdateDealerFields(ctx, dealer.ID, map[string]any{
		"showroom_images": encodeList(images),
	})
	if err != nil {
		return nil, err
	}
	return images, nil
}

func encodeList(items []string) datatypes.JSON {
	if items == nil {
		items = []string{}
	}
	raw, err := json.Marshal(items)
	if err != nil {
		return datatypes.JSON(`[]`)
	}
	return datatypes.JSON(raw)
}

func encodeMap(m map[string]string) datatypes.JSON {
	if m == nil {
		m = map[string]string{}
	}
	raw, err := json.Marshal(m)
	if err != nil {
		return datatypes.JSON(`{}`)
	}
	return datatypes.JSON(raw)
}
