package stores

// Shop is one Magic Coffee location shown on the store-locator map.
type Shop struct {
	ID        int     `json:"id"`
	Name      string  `json:"name"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// DefaultShops are the chain's Hanoi locations.
func DefaultShops() []Shop {
	return []Shop{
		{ID: 1, Name: "LLC 1, 276 Thái Hà, quận Đống Đa, Hà Nội", Latitude: 21.008145, Longitude: 105.820829},
		{ID: 2, Name: "LLC2, Tầng 26 tòa Hei Tower, số 1 Ngụy Như Kon Tum, Thanh Xuân, Hà Nội", Latitude: 21.004531, Longitude: 105.811485},
		{ID: 3, Name: "LLC3, Tầng 2 A11 khu tập thể Khương Thượng, Đống Đa, Hà Nội", Latitude: 21.012507, Longitude: 105.821158},
	}
}
