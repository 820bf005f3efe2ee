package target

// Taxonomy rows keep their legacy numeric ids so that the id arrays and
// single-valued selections written by the entity pipelines stay valid.

type Skill struct {
	ID    int    `gorm:"primaryKey" json:"id"`
	Label string `gorm:"column:label;not null" json:"label"`
	Slug  string `gorm:"column:slug;uniqueIndex" json:"slug"`
}

func (Skill) TableName() string { return "skills" }

type Tag struct {
	ID    int    `gorm:"primaryKey" json:"id"`
	Label string `gorm:"column:label;not null" json:"label"`
	Slug  string `gorm:"column:slug;uniqueIndex" json:"slug"`
}

func (Tag) TableName() string { return "tags" }

type Industry struct {
	ID    int    `gorm:"primaryKey" json:"id"`
	Label string `gorm:"column:label;not null" json:"label"`
	Slug  string `gorm:"column:slug;uniqueIndex" json:"slug"`
}

func (Industry) TableName() string { return "industries" }

type ContactMethod struct {
	ID    int    `gorm:"primaryKey" json:"id"`
	Label string `gorm:"column:label;not null" json:"label"`
	Slug  string `gorm:"column:slug;uniqueIndex" json:"slug"`
}

func (ContactMethod) TableName() string { return "contact_methods" }

type PaymentMethod struct {
	ID    int    `gorm:"primaryKey" json:"id"`
	Label string `gorm:"column:label;not null" json:"label"`
	Slug  string `gorm:"column:slug;uniqueIndex" json:"slug"`
}

func (PaymentMethod) TableName() string { return "payment_methods" }

type SettlementMethod struct {
	ID    int    `gorm:"primaryKey" json:"id"`
	Label string `gorm:"column:label;not null" json:"label"`
	Slug  string `gorm:"column:slug;uniqueIndex" json:"slug"`
}

func (SettlementMethod) TableName() string { return "settlement_methods" }

type Category struct {
	ID    int    `gorm:"primaryKey" json:"id"`
	Label string `gorm:"column:label;not null" json:"label"`
	Slug  string `gorm:"column:slug;uniqueIndex" json:"slug"`
}

func (Category) TableName() string { return "categories" }

type Subcategory struct {
	ID         int    `gorm:"primaryKey" json:"id"`
	Label      string `gorm:"column:label;not null" json:"label"`
	Slug       string `gorm:"column:slug;uniqueIndex" json:"slug"`
	CategoryID *int   `gorm:"column:category_id;index" json:"category_id"`
}

func (Subcategory) TableName() string { return "subcategories" }
