package migrate

import (
	"context"
	"encoding/json"
	"fmt"
	"reflect"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/damigrowth/migrator/internal/data/repos/target"
	domain "github.com/damigrowth/migrator/internal/domain/target"
	"github.com/damigrowth/migrator/internal/platform/logger"
)

// TxRunner scopes one entity's writes to one transaction. The gorm
// implementation is used in production; tests substitute a pass-through.
type TxRunner interface {
	InTx(ctx context.Context, fn func(tx *gorm.DB) error) error
}

type gormTxRunner struct {
	db *gorm.DB
}

func NewGormTxRunner(db *gorm.DB) TxRunner {
	return &gormTxRunner{db: db}
}

func (r *gormTxRunner) InTx(ctx context.Context, fn func(tx *gorm.DB) error) error {
	return r.db.WithContext(ctx).Transaction(fn)
}

// ProfilePayload is one fully assembled entity heading for the target
// store: the resolved account, the discriminator, and the profile row.
type ProfilePayload struct {
	LegacyID int
	TypeSlug string
	User     *domain.User
	Profile  domain.Profile
	// UserChanges are the shared account fields mirrored on every branch.
	UserChanges map[string]any
}

// Upserter writes one entity's rows inside one transaction and branches on
// the type discriminator.
type Upserter struct {
	tx       TxRunner
	users    target.UserRepo
	profiles target.ProfileRepo
	services target.ServiceRepo
	log      *logger.Logger
}

func NewUpserter(tx TxRunner, users target.UserRepo, profiles target.ProfileRepo, services target.ServiceRepo, baseLog *logger.Logger) *Upserter {
	return &Upserter{
		tx:       tx,
		users:    users,
		profiles: profiles,
		services: services,
		log:      baseLog.With("component", "Upserter"),
	}
}

// UpsertProfile applies one assembled payload. existing is the current
// profile for this legacy entity (nil when absent); ownerProfile is the
// profile already owned by the resolved user, if any.
func (u *Upserter) UpsertProfile(ctx context.Context, p *ProfilePayload, updateExisting bool, existing, ownerProfile *domain.Profile) (Outcome, string, error) {
	if p == nil || p.User == nil {
		return OutcomeFailed, "", fmt.Errorf("payload missing resolved user")
	}

	// "user" type: account-only update, no profile row ever created.
	if p.TypeSlug != domain.ProfileFreelancer && p.TypeSlug != domain.ProfileCompany {
		changes := diffUser(p.User, p.UserChanges)
		if len(changes) == 0 {
			return OutcomeSkipped, "no changes", nil
		}
		err := u.tx.InTx(ctx, func(tx *gorm.DB) error {
			return u.users.UpdateFields(ctx, tx, p.User.ID, changes)
		})
		if err != nil {
			return OutcomeFailed, "", err
		}
		return OutcomeUpdated, "", nil
	}

	// Profile-eligible branch: user row and profile row move together.
	if existing == nil && ownerProfile != nil && ownerProfile.LegacyID != p.LegacyID {
		// A second profile for the same user is never created.
		if !updateExisting {
			return OutcomeSkipped, "user already owns a profile", nil
		}
		existing = ownerProfile
	}

	if existing == nil {
		p.Profile.ID = uuid.New()
		p.Profile.UserID = p.User.ID
		p.Profile.LegacyID = p.LegacyID
		now := time.Now().UTC()
		p.Profile.CreatedAt = now
		p.Profile.UpdatedAt = now

		userChanges := diffUser(p.User, p.UserChanges)
		userChanges["role"] = domain.RolePro

		err := u.tx.InTx(ctx, func(tx *gorm.DB) error {
			if err := u.users.UpdateFields(ctx, tx, p.User.ID, userChanges); err != nil {
				return err
			}
			return u.profiles.Create(ctx, tx, &p.Profile)
		})
		if err != nil {
			return OutcomeFailed, "", err
		}
		return OutcomeCreated, "", nil
	}

	if !updateExisting {
		return OutcomeSkipped, "already migrated", nil
	}

	profileChanges := diffProfile(existing, &p.Profile)
	userChanges := diffUser(p.User, p.UserChanges)
	if p.User.Role != domain.RolePro {
		userChanges["role"] = domain.RolePro
	}
	if len(profileChanges) == 0 && len(userChanges) == 0 {
		return OutcomeSkipped, "no changes", nil
	}
	if len(profileChanges) > 0 {
		profileChanges["updated_at"] = time.Now().UTC()
	}

	err := u.tx.InTx(ctx, func(tx *gorm.DB) error {
		if err := u.users.UpdateFields(ctx, tx, p.User.ID, userChanges); err != nil {
			return err
		}
		return u.profiles.UpdateFields(ctx, tx, existing.ID, profileChanges)
	})
	if err != nil {
		return OutcomeFailed, "", err
	}
	return OutcomeUpdated, "", nil
}

// ServicePayload is one assembled service row plus its legacy key.
type ServicePayload struct {
	LegacyID int
	Service  domain.Service
}

// UpsertService writes one service. The caller has already resolved the
// owning profile; a missing profile never creates a placeholder.
func (u *Upserter) UpsertService(ctx context.Context, p *ServicePayload, updateExisting bool, existing *domain.Service) (Outcome, string, error) {
	if p == nil {
		return OutcomeFailed, "", fmt.Errorf("nil service payload")
	}
	if p.Service.ProfileID == uuid.Nil {
		return OutcomeFailed, "", ErrProfileMissing
	}

	if existing == nil {
		p.Service.ID = uuid.New()
		p.Service.LegacyID = p.LegacyID
		now := time.Now().UTC()
		p.Service.CreatedAt = now
		p.Service.UpdatedAt = now
		err := u.tx.InTx(ctx, func(tx *gorm.DB) error {
			return u.services.Create(ctx, tx, &p.Service)
		})
		if err != nil {
			return OutcomeFailed, "", err
		}
		return OutcomeCreated, "", nil
	}

	if !updateExisting {
		return OutcomeSkipped, "already migrated", nil
	}

	changes := diffService(existing, &p.Service)
	if len(changes) == 0 {
		return OutcomeSkipped, "no changes", nil
	}
	changes["updated_at"] = time.Now().UTC()
	err := u.tx.InTx(ctx, func(tx *gorm.DB) error {
		return u.services.UpdateFields(ctx, tx, existing.ID, changes)
	})
	if err != nil {
		return OutcomeFailed, "", err
	}
	return OutcomeUpdated, "", nil
}

// diffUser keeps only the desired fields that differ from the current row.
func diffUser(current *domain.User, desired map[string]any) map[string]any {
	out := make(map[string]any, len(desired))
	cur := map[string]any{
		"display_name": current.DisplayName,
		"first_name":   current.FirstName,
		"last_name":    current.LastName,
		"phone":        current.Phone,
		"username":     current.Username,
		"role":         current.Role,
	}
	for k, v := range desired {
		if cv, ok := cur[k]; !ok || !reflect.DeepEqual(cv, v) {
			out[k] = v
		}
	}
	return out
}

func diffProfile(existing, desired *domain.Profile) map[string]any {
	changes := map[string]any{}
	if existing.Type != desired.Type {
		changes["type"] = desired.Type
	}
	if existing.Tagline != desired.Tagline {
		changes["tagline"] = desired.Tagline
	}
	if existing.Description != desired.Description {
		changes["description"] = desired.Description
	}
	if existing.Website != desired.Website {
		changes["website"] = desired.Website
	}
	if !eqFloatPtr(existing.Rate, desired.Rate) {
		changes["rate"] = desired.Rate
	}
	if !eqIntPtr(existing.Commencement, desired.Commencement) {
		changes["commencement"] = desired.Commencement
	}
	if !eqStrPtr(existing.Size, desired.Size) {
		changes["size"] = desired.Size
	}
	if existing.Featured != desired.Featured {
		changes["featured"] = desired.Featured
	}
	if !eqIntPtr(existing.CategoryID, desired.CategoryID) {
		changes["category_id"] = desired.CategoryID
	}
	if !eqIntPtr(existing.SubcategoryID, desired.SubcategoryID) {
		changes["subcategory_id"] = desired.SubcategoryID
	}
	diffJSONField(changes, "coverage", existing.Coverage, desired.Coverage)
	diffJSONField(changes, "visibility", existing.Visibility, desired.Visibility)
	diffJSONField(changes, "billing", existing.Billing, desired.Billing)
	diffJSONField(changes, "socials", existing.Socials, desired.Socials)
	diffJSONField(changes, "media", existing.Media, desired.Media)
	diffJSONField(changes, "skills", existing.Skills, desired.Skills)
	diffJSONField(changes, "tags", existing.Tags, desired.Tags)
	diffJSONField(changes, "industries", existing.Industries, desired.Industries)
	diffJSONField(changes, "contact_methods", existing.ContactMethods, desired.ContactMethods)
	diffJSONField(changes, "payment_methods", existing.PaymentMethods, desired.PaymentMethods)
	diffJSONField(changes, "settlement_methods", existing.SettlementMethods, desired.SettlementMethods)
	if existing.Rating != desired.Rating {
		changes["rating"] = desired.Rating
	}
	if existing.ReviewCount != desired.ReviewCount {
		changes["review_count"] = desired.ReviewCount
	}
	return changes
}

func diffService(existing, desired *domain.Service) map[string]any {
	changes := map[string]any{}
	if existing.ProfileID != desired.ProfileID {
		changes["profile_id"] = desired.ProfileID
	}
	if existing.Title != desired.Title {
		changes["title"] = desired.Title
	}
	if existing.Description != desired.Description {
		changes["description"] = desired.Description
	}
	if !eqFloatPtr(existing.Price, desired.Price) {
		changes["price"] = desired.Price
	}
	if existing.Fixed != desired.Fixed {
		changes["fixed"] = desired.Fixed
	}
	if existing.Status != desired.Status {
		changes["status"] = desired.Status
	}
	if !eqIntPtr(existing.CategoryID, desired.CategoryID) {
		changes["category_id"] = desired.CategoryID
	}
	if !eqIntPtr(existing.SubcategoryID, desired.SubcategoryID) {
		changes["subcategory_id"] = desired.SubcategoryID
	}
	diffJSONField(changes, "tags", existing.Tags, desired.Tags)
	diffJSONField(changes, "media", existing.Media, desired.Media)
	if existing.Rating != desired.Rating {
		changes["rating"] = desired.Rating
	}
	if existing.ReviewCount != desired.ReviewCount {
		changes["review_count"] = desired.ReviewCount
	}
	return changes
}

// diffJSONField compares decoded values, not raw bytes; jsonb normalizes
// key order so byte equality would report false diffs.
func diffJSONField(changes map[string]any, column string, existing, desired datatypes.JSON) {
	if jsonEqual(existing, desired) {
		return
	}
	changes[column] = desired
}

func jsonEqual(a, b datatypes.JSON) bool {
	if len(a) == 0 && len(b) == 0 {
		return true
	}
	var av, bv any
	if err := json.Unmarshal(normalizeNull(a), &av); err != nil {
		return false
	}
	if err := json.Unmarshal(normalizeNull(b), &bv); err != nil {
		return false
	}
	return reflect.DeepEqual(av, bv)
}

func normalizeNull(v datatypes.JSON) []byte {
	if len(v) == 0 {
		return []byte("null")
	}
	return v
}

func eqIntPtr(a, b *int) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

func eqFloatPtr(a, b *float64) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

func eqStrPtr(a, b *string) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

// marshalJSON renders a shape for a jsonb column. A nil pointer value
// becomes SQL-friendly JSON null.
func marshalJSON(v any) (datatypes.JSON, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	return datatypes.JSON(raw), nil
}
