package services

import (
	"food-express/models"

	"gorm.io/gorm"
)

// RestaurantService owns every query against the restaurants table.
type RestaurantService struct {
	db *gorm.DB
}

func NewRestaurantService(db *gorm.DB) *RestaurantService {
	return &RestaurantService{db: db}
}

// RestaurantUpdate lists the fields a partial update may touch.
type RestaurantUpdate struct {
	Name         *string
	Address      *string
	Phone        *string
	OpeningHours *string
}

func (s *RestaurantService) All() ([]models.Restaurant, error) {
	var restaurants []models.Restaurant
	if err := s.db.Find(&restaurants).Error; err != nil {
		return nil, err
	}
	return restaurants, nil
}

func (s *RestaurantService) FindByID(id uint) (*models.Restaurant, error) {
	var restaurant models.Restaurant
	if err := s.db.First(&restaurant, id).Error; err != nil {
		return nil, err
	}
	return &restaurant, nil
}

// Create inserts a restaurant. An empty openingHours falls back to the
// column default "08:00-22:00"; a duplicate address yields ErrConflict.
func (s *RestaurantService) Create(name, address, phone, openingHours string) (*models.Restaurant, error) {
	restaurant := models.Restaurant{
		Name:         name,
		Address:      address,
		Phone:        phone,
		OpeningHours: openingHours,
	}
	if err := s.db.Create(&restaurant).Error; err != nil {
		if isConstraintViolation(err) {
			return nil, ErrConflict
		}
		return nil, err
	}
	return &restaurant, nil
}

// Update patches only the supplied fields and reports how many rows changed.
func (s *RestaurantService) Update(id uint, in RestaurantUpdate) (int64, error) {
	fields := map[string]interface{}{}
	if in.Name != nil {
		fields["name"] = *in.Name
	}
	if in.Address != nil {
		fields["address"] = *in.Address
	}
	if in.Phone != nil {
		fields["phone"] = *in.Phone
	}
	if in.OpeningHours != nil {
		fields["opening_hours"] = *in.OpeningHours
	}
	if len(fields) == 0 {
		return 0, nil
	}
	res := s.db.Model(&models.Restaurant{}).Where("id = ?", id).Updates(fields)
	if res.Error != nil {
		if isConstraintViolation(res.Error) {
			return 0, ErrConflict
		}
		return 0, res.Error
	}
	return res.RowsAffected, nil
}

// DeleteByID removes a restaurant; its menus go with it via the cascade
// constraint on restaurant_id.
func (s *RestaurantService) DeleteByID(id uint) (int64, error) {
	res := s.db.Delete(&models.Restaurant{}, id)
	return res.RowsAffected, res.Error
}

func (s *RestaurantService) DeleteAll() (int64, error) {
	res := s.db.Where("1 = 1").Delete(&models.Restaurant{})
	return res.RowsAffected, res.Error
}

// List returns one page of restaurants. Sort accepts name or address;
// anything else orders by id.
func (s *RestaurantService) List(opts ListOptions) (*Page, error) {
	limit, offset := opts.normalize()
	orderBy := sortColumn(opts.Sort, "name", "address")

	var restaurants []models.Restaurant
	if err := s.db.Order(orderBy + " ASC").Limit(limit).Offset(offset).Find(&restaurants).Error; err != nil {
		return nil, err
	}
	var total int64
	if err := s.db.Model(&models.Restaurant{}).Count(&total).Error; err != nil {
		return nil, err
	}
	return &Page{Total: total, Limit: limit, Offset: offset, Data: restaurants}, nil
}
