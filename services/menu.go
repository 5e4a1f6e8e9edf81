package services

import (
	"food-express/models"

	"gorm.io/gorm"
)

// MenuService owns every query against the menus table.
type MenuService struct {
	db *gorm.DB
}

func NewMenuService(db *gorm.DB) *MenuService {
	return &MenuService{db: db}
}

// MenuUpdate lists the fields a partial update may touch.
type MenuUpdate struct {
	RestaurantID *uint
	Name         *string
	Description  *string
	Price        *float64
	Category     *string
}

func (s *MenuService) All() ([]models.Menu, error) {
	var menus []models.Menu
	if err := s.db.Find(&menus).Error; err != nil {
		return nil, err
	}
	return menus, nil
}

func (s *MenuService) FindByID(id uint) (*models.Menu, error) {
	var menu models.Menu
	if err := s.db.First(&menu, id).Error; err != nil {
		return nil, err
	}
	return &menu, nil
}

// FindByRestaurant lists the menus of one restaurant, for the public
// restaurant menu view.
func (s *MenuService) FindByRestaurant(restaurantID uint) ([]models.Menu, error) {
	var menus []models.Menu
	if err := s.db.Where("restaurant_id = ?", restaurantID).Find(&menus).Error; err != nil {
		return nil, err
	}
	return menus, nil
}

// Create inserts a menu. A restaurant_id that references no restaurant trips
// the foreign-key constraint and yields ErrConflict.
func (s *MenuService) Create(restaurantID uint, name, description string, price float64, category string) (*models.Menu, error) {
	menu := models.Menu{
		RestaurantID: restaurantID,
		Name:         name,
		Description:  description,
		Price:        price,
		Category:     category,
	}
	if err := s.db.Create(&menu).Error; err != nil {
		if isConstraintViolation(err) {
			return nil, ErrConflict
		}
		return nil, err
	}
	return &menu, nil
}

// Update patches only the supplied fields and reports how many rows changed.
func (s *MenuService) Update(id uint, in MenuUpdate) (int64, error) {
	fields := map[string]interface{}{}
	if in.RestaurantID != nil {
		fields["restaurant_id"] = *in.RestaurantID
	}
	if in.Name != nil {
		fields["name"] = *in.Name
	}
	if in.Description != nil {
		fields["description"] = *in.Description
	}
	if in.Price != nil {
		fields["price"] = *in.Price
	}
	if in.Category != nil {
		fields["category"] = *in.Category
	}
	if len(fields) == 0 {
		return 0, nil
	}
	res := s.db.Model(&models.Menu{}).Where("id = ?", id).Updates(fields)
	if res.Error != nil {
		if isConstraintViolation(res.Error) {
			return 0, ErrConflict
		}
		return 0, res.Error
	}
	return res.RowsAffected, nil
}

func (s *MenuService) DeleteByID(id uint) (int64, error) {
	res := s.db.Delete(&models.Menu{}, id)
	return res.RowsAffected, res.Error
}

func (s *MenuService) DeleteAll() (int64, error) {
	res := s.db.Where("1 = 1").Delete(&models.Menu{})
	return res.RowsAffected, res.Error
}

// List returns one page of menus. Sort accepts name, price or category;
// anything else orders by id.
func (s *MenuService) List(opts ListOptions) (*Page, error) {
	limit, offset := opts.normalize()
	orderBy := sortColumn(opts.Sort, "name", "price", "category")

	var menus []models.Menu
	if err := s.db.Order(orderBy + " ASC").Limit(limit).Offset(offset).Find(&menus).Error; err != nil {
		return nil, err
	}
	var total int64
	if err := s.db.Model(&models.Menu{}).Count(&total).Error; err != nil {
		return nil, err
	}
	return &Page{Total: total, Limit: limit, Offset: offset, Data: menus}, nil
}
