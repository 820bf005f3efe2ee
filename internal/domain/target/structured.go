package target

// JSON shapes stored in the denormalized columns. Every field is explicit:
// missing legacy data becomes null/false/empty, never an absent key.

type CoverageShape struct {
	Online    bool    `json:"online"`
	Onsite    bool    `json:"onsite"`
	Onbase    bool    `json:"onbase"`
	Address   *string `json:"address"`
	CountyID  *int    `json:"county_id"`
	AreaID    *int    `json:"area_id"`
	ZipcodeID *int    `json:"zipcode_id"`
	Counties  []int   `json:"counties"`
	Areas     []int   `json:"areas"`
}

func DefaultCoverage() CoverageShape {
	return CoverageShape{Counties: []int{}, Areas: []int{}}
}

type VisibilityShape struct {
	Email   bool `json:"email"`
	Phone   bool `json:"phone"`
	Address bool `json:"address"`
}

// DefaultVisibility is everything visible; an absent component means the
// owner never restricted anything.
func DefaultVisibility() VisibilityShape {
	return VisibilityShape{Email: true, Phone: true, Address: true}
}

type BillingShape struct {
	Receipt    bool    `json:"receipt"`
	Invoice    bool    `json:"invoice"`
	AFM        *string `json:"afm"`
	DOY        *string `json:"doy"`
	BrandName  *string `json:"brand_name"`
	Profession *string `json:"profession"`
	Address    *string `json:"address"`
}

// SocialsShape has exactly one URL (or null) per fixed platform key.
type SocialsShape struct {
	Facebook  *string `json:"facebook"`
	LinkedIn  *string `json:"linkedin"`
	X         *string `json:"x"`
	Youtube   *string `json:"youtube"`
	Github    *string `json:"github"`
	Instagram *string `json:"instagram"`
	Behance   *string `json:"behance"`
	Dribbble  *string `json:"dribbble"`
}

// MediaItem is an already-hosted asset reference.
type MediaItem struct {
	URL  string `json:"url"`
	Name string `json:"name"`
}
