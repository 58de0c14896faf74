package category

const (
	TypeExpense int64 = 1
	TypeIncome  int64 = 2
)

// DefaultOwnerID marks shared reference categories. They are visible to every
// user and can never be changed or removed through the API.
const DefaultOwnerID int64 = 0

// Category groups records. Name is unique across all categories, defaults
// included.
type Category struct {
	ID     int64  `json:"id"`
	UserID int64  `json:"userId"`
	Name   string `json:"name"`
	Color  string `json:"color"`
	Icon   string `json:"icon"`
	Type   int64  `json:"type"`
}

// Request carries the create/update payload.
type Request struct {
	Name  string `json:"name"`
	Color string `json:"color"`
	Icon  string `json:"icon"`
	Type  int64  `json:"type"`
}

type Repository interface {
	FindAllByOwner(ownerID int64) ([]Category, error)
	FindByID(id int64) (*Category, error)
	FindByIDAndOwner(id, ownerID int64) (*Category, error)
	FindByTypeAndOwner(categoryType, ownerID int64) ([]Category, error)
	Create(category *Category) error
	Update(category *Category) error
	DeleteByID(id int64) error
}
