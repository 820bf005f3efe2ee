package migrate

import (
	"strings"

	"github.com/damigrowth/migrator/internal/domain/legacy"
	"github.com/damigrowth/migrator/internal/domain/target"
)

// Resolver maps a legacy entity to its target account through the
// entity -> legacy user -> email chain. Pure lookups over maps populated
// by one bulk query each.
type Resolver struct {
	userLinks   map[int]int
	legacyUsers map[int]*legacy.User
	byEmail     map[string]*target.User
}

func NewResolver(userLinks map[int]int, legacyUsers map[int]*legacy.User, targetUsers []*target.User) *Resolver {
	byEmail := make(map[string]*target.User, len(targetUsers))
	for _, u := range targetUsers {
		byEmail[NormalizeEmail(u.Email)] = u
	}
	return &Resolver{
		userLinks:   userLinks,
		legacyUsers: legacyUsers,
		byEmail:     byEmail,
	}
}

// NormalizeEmail is the canonical form used for every cross-system email
// comparison.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Resolve returns the target user owning legacyEntityID, ErrUnlinked when
// no link row exists, or ErrUserNotFound when the chain breaks further on.
func (r *Resolver) Resolve(legacyEntityID int) (*target.User, error) {
	legacyUserID, ok := r.userLinks[legacyEntityID]
	if !ok {
		return nil, ErrUnlinked
	}
	legacyUser, ok := r.legacyUsers[legacyUserID]
	if !ok || NormalizeEmail(legacyUser.Email) == "" {
		return nil, ErrUserNotFound
	}
	targetUser, ok := r.byEmail[NormalizeEmail(legacyUser.Email)]
	if !ok {
		return nil, ErrUserNotFound
	}
	return targetUser, nil
}

// ResolveByEmail is the orphan fallback: match the entity's own stored
// email directly against the target index.
func (r *Resolver) ResolveByEmail(email string) (*target.User, bool) {
	u, ok := r.byEmail[NormalizeEmail(email)]
	return u, ok
}
