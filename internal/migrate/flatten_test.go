package migrate

import (
	"testing"

	"github.com/damigrowth/migrator/internal/domain/legacy"
)

func boolp(b bool) *bool       { return &b }
func strp(s string) *string    { return &s }
func intp(n int) *int          { return &n }
func floatp(f float64) *float64 { return &f }

func TestFlattenAll_Defaults(t *testing.T) {
	out := FlattenAll([]int{1}, ComponentData{})
	f := out[1]
	if f == nil {
		t.Fatal("no entry for entity without components")
	}
	if !f.Visibility.Email || !f.Visibility.Phone || !f.Visibility.Address {
		t.Fatalf("default visibility not all-true: %+v", f.Visibility)
	}
	if f.Coverage.Online || f.Coverage.Counties == nil || len(f.Coverage.Counties) != 0 {
		t.Fatalf("default coverage wrong: %+v", f.Coverage)
	}
	if f.Billing != nil {
		t.Fatalf("billing should stay nil when absent, got %+v", f.Billing)
	}
	if f.Socials.Facebook != nil {
		t.Fatal("default socials should be all null")
	}
	if len(f.Warnings) != 0 {
		t.Fatalf("unexpected warnings: %v", f.Warnings)
	}
}

func TestFlattenAll_Coverage(t *testing.T) {
	data := ComponentData{
		Links: []*legacy.ComponentLink{
			{EntityID: 1, ComponentID: 7, ComponentType: legacy.ComponentCoverage},
		},
		Coverages: map[int]*legacy.Coverage{
			7: {ID: 7, Online: boolp(true), Address: strp("Athens"), CountyID: intp(3)},
		},
		CoverageCounties: map[int][]int{7: {3, 5}},
	}

	f := FlattenAll([]int{1}, data)[1]
	if !f.Coverage.Online || f.Coverage.Onsite {
		t.Fatalf("coverage booleans wrong: %+v", f.Coverage)
	}
	if f.Coverage.Address == nil || *f.Coverage.Address != "Athens" {
		t.Fatalf("address = %v", f.Coverage.Address)
	}
	if len(f.Coverage.Counties) != 2 || f.Coverage.Counties[0] != 3 {
		t.Fatalf("counties = %v", f.Coverage.Counties)
	}
	if f.Coverage.Areas == nil || len(f.Coverage.Areas) != 0 {
		t.Fatalf("areas should be empty non-nil, got %v", f.Coverage.Areas)
	}
}

func TestFlattenAll_BillingPresentButEmpty(t *testing.T) {
	data := ComponentData{
		Links: []*legacy.ComponentLink{
			{EntityID: 1, ComponentID: 9, ComponentType: legacy.ComponentBilling},
		},
		Billings: map[int]*legacy.Billing{9: {ID: 9}},
	}

	f := FlattenAll([]int{1}, data)[1]
	if f.Billing == nil {
		t.Fatal("billing component present, shape must not be nil")
	}
	if f.Billing.Receipt || f.Billing.Invoice || f.Billing.AFM != nil {
		t.Fatalf("empty billing row produced %+v", f.Billing)
	}
}

func TestFlattenAll_Socials(t *testing.T) {
	data := ComponentData{
		Links: []*legacy.ComponentLink{
			{EntityID: 1, ComponentID: 20, ComponentType: legacy.ComponentSocialGithub},
			{EntityID: 1, ComponentID: 21, ComponentType: legacy.ComponentSocialFacebook},
		},
		SocialSingles: map[int]*legacy.SocialSingle{
			20: {ID: 20, URL: strp("https://github.com/alice")},
			21: {ID: 21, URL: strp("")},
		},
	}

	f := FlattenAll([]int{1}, data)[1]
	if f.Socials.Github == nil || *f.Socials.Github != "https://github.com/alice" {
		t.Fatalf("github = %v", f.Socials.Github)
	}
	// Empty string URLs collapse to null.
	if f.Socials.Facebook != nil {
		t.Fatalf("facebook = %v, want nil", *f.Socials.Facebook)
	}
}

func TestFlattenAll_UnknownComponentWarns(t *testing.T) {
	data := ComponentData{
		Links: []*legacy.ComponentLink{
			{EntityID: 1, ComponentID: 30, ComponentType: "settings.notifications"},
		},
	}

	f := FlattenAll([]int{1}, data)[1]
	if len(f.Warnings) != 1 {
		t.Fatalf("warnings = %v, want one unknown-type warning", f.Warnings)
	}
	// Unknown components never break the defaults.
	if !f.Visibility.Email {
		t.Fatal("defaults lost after unknown component")
	}
}

func TestFlattenMedia(t *testing.T) {
	files := []*legacy.File{
		{ID: 1, Name: "a.png", URL: "https://cdn.example.com/a.png"},
		{ID: 2, Name: "broken", URL: ""},
		nil,
	}
	out := FlattenMedia(files)
	if len(out) != 1 {
		t.Fatalf("media = %v, want single valid item", out)
	}
	if out[0].URL != "https://cdn.example.com/a.png" || out[0].Name != "a.png" {
		t.Fatalf("item = %+v", out[0])
	}
	if empty := FlattenMedia(nil); empty == nil || len(empty) != 0 {
		t.Fatalf("nil input should yield empty non-nil slice, got %v", empty)
	}
}
