package legacy

type Skill struct {
	ID    int    `gorm:"primaryKey" json:"id"`
	Label string `gorm:"column:label" json:"label"`
	Slug  string `gorm:"column:slug" json:"slug"`
}

func (Skill) TableName() string { return "skills" }

type Tag struct {
	ID    int    `gorm:"primaryKey" json:"id"`
	Label string `gorm:"column:label" json:"label"`
	Slug  string `gorm:"column:slug" json:"slug"`
}

func (Tag) TableName() string { return "tags" }

type Industry struct {
	ID    int    `gorm:"primaryKey" json:"id"`
	Label string `gorm:"column:label" json:"label"`
	Slug  string `gorm:"column:slug" json:"slug"`
}

func (Industry) TableName() string { return "industries" }

type ContactMethod struct {
	ID    int    `gorm:"primaryKey" json:"id"`
	Label string `gorm:"column:label" json:"label"`
	Slug  string `gorm:"column:slug" json:"slug"`
}

func (ContactMethod) TableName() string { return "contact_methods" }

type PaymentMethod struct {
	ID    int    `gorm:"primaryKey" json:"id"`
	Label string `gorm:"column:label" json:"label"`
	Slug  string `gorm:"column:slug" json:"slug"`
}

func (PaymentMethod) TableName() string { return "payment_methods" }

type SettlementMethod struct {
	ID    int    `gorm:"primaryKey" json:"id"`
	Label string `gorm:"column:label" json:"label"`
	Slug  string `gorm:"column:slug" json:"slug"`
}

func (SettlementMethod) TableName() string { return "settlement_methods" }

type Category struct {
	ID    int    `gorm:"primaryKey" json:"id"`
	Label string `gorm:"column:label" json:"label"`
	Slug  string `gorm:"column:slug" json:"slug"`
}

func (Category) TableName() string { return "categories" }

type Subcategory struct {
	ID         int    `gorm:"primaryKey" json:"id"`
	Label      string `gorm:"column:label" json:"label"`
	Slug       string `gorm:"column:slug" json:"slug"`
	CategoryID *int   `gorm:"column:category_id" json:"category_id"`
}

func (Subcategory) TableName() string { return "subcategories" }

// Many-to-many taxonomy joins on freelancers.

type FreelancerSkillLink struct {
	FreelancerID int `gorm:"column:freelancer_id" json:"freelancer_id"`
	SkillID      int `gorm:"column:skill_id" json:"skill_id"`
	Order        int `gorm:"column:ord" json:"ord"`
}

func (FreelancerSkillLink) TableName() string { return "freelancers_skills_links" }

type FreelancerTagLink struct {
	FreelancerID int `gorm:"column:freelancer_id" json:"freelancer_id"`
	TagID        int `gorm:"column:tag_id" json:"tag_id"`
}

func (FreelancerTagLink) TableName() string { return "freelancers_tags_links" }

type FreelancerIndustryLink struct {
	FreelancerID int `gorm:"column:freelancer_id" json:"freelancer_id"`
	IndustryID   int `gorm:"column:industry_id" json:"industry_id"`
}

func (FreelancerIndustryLink) TableName() string { return "freelancers_industries_links" }

type FreelancerContactMethodLink struct {
	FreelancerID    int `gorm:"column:freelancer_id" json:"freelancer_id"`
	ContactMethodID int `gorm:"column:contact_method_id" json:"contact_method_id"`
}

func (FreelancerContactMethodLink) TableName() string { return "freelancers_contact_methods_links" }

type FreelancerPaymentMethodLink struct {
	FreelancerID    int `gorm:"column:freelancer_id" json:"freelancer_id"`
	PaymentMethodID int `gorm:"column:payment_method_id" json:"payment_method_id"`
}

func (FreelancerPaymentMethodLink) TableName() string { return "freelancers_payment_methods_links" }

type FreelancerSettlementMethodLink struct {
	FreelancerID       int `gorm:"column:freelancer_id" json:"freelancer_id"`
	SettlementMethodID int `gorm:"column:settlement_method_id" json:"settlement_method_id"`
}

func (FreelancerSettlementMethodLink) TableName() string {
	return "freelancers_settlement_methods_links"
}

// Single-valued taxonomy selections.

type FreelancerCategoryLink struct {
	FreelancerID int `gorm:"column:freelancer_id" json:"freelancer_id"`
	CategoryID   int `gorm:"column:category_id" json:"category_id"`
}

func (FreelancerCategoryLink) TableName() string { return "freelancers_category_links" }

type FreelancerSubcategoryLink struct {
	FreelancerID  int `gorm:"column:freelancer_id" json:"freelancer_id"`
	SubcategoryID int `gorm:"column:subcategory_id" json:"subcategory_id"`
}

func (FreelancerSubcategoryLink) TableName() string { return "freelancers_subcategory_links" }
