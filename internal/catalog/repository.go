package catalog

// Repository defines the data-access contract for the drink catalog.
// Service depends ONLY on this interface.
type Repository interface {
	List() []Product
	FindByID(id string) (*Product, error)
	SetImageURL(id, url string) error
}
