package store

import (
	"gorm.io/gorm"

	"go-retail-pos/internal/models"
)

// ListContacts returns contacts ordered by name. An empty kind returns
// everyone; otherwise only customers or only suppliers.
func (s *Store) ListContacts(kind string) ([]models.Contact, error) {
	var contacts []models.Contact
	q := s.db.Order("name")
	if kind != "" {
		q = q.Where("kind = ?", kind)
	}
	err := q.Find(&contacts).Error
	return contacts, err
}

// SaveContact inserts when ID is zero, otherwise updates the contact's
// editable fields. The operation counter is owned by the transaction paths
// and is deliberately not written here.
func (s *Store) SaveContact(c *models.Contact) error {
	if c.ID == 0 {
		return s.db.Create(c).Error
	}
	return s.db.Model(&models.Contact{}).Where("id = ?", c.ID).
		Select("kind", "name", "tax_id", "phone", "email", "address").
		Updates(c).Error
}

// DeleteContact removes a contact unconditionally. Historical sales and
// purchases keep their denormalized name snapshot, so nothing cascades.
func (s *Store) DeleteContact(id uint) error {
	return s.db.Delete(&models.Contact{}, id).Error
}

// IncrementContactOperations bumps the contact's operation counter by one.
// A nil or unknown id is a no-op.
func (s *Store) IncrementContactOperations(id *uint) error {
	if id == nil {
		return nil
	}
	return s.db.Model(&models.Contact{}).Where("id = ?", *id).
		UpdateColumn("operation_count", gorm.Expr("operation_count + 1")).Error
}

// RecalculateContactOperations overwrites every contact's operation counter
// with the true count of sales (as customer) plus purchases (as supplier).
// The incremental counter can drift - the post-commit bump is best-effort -
// so this runs before every contact listing and is safe to repeat.
func (s *Store) RecalculateContactOperations() error {
	return s.db.Exec(`
		UPDATE contacts SET operation_count =
			(SELECT COUNT(*) FROM sales WHERE sales.customer_id = contacts.id)
			+ (SELECT COUNT(*) FROM purchases WHERE purchases.supplier_id = contacts.id)`).Error
}

// GetContact fetches one contact by id.
func (s *Store) GetContact(id uint) (*models.Contact, error) {
	var contact models.Contact
	if err := s.db.First(&contact, id).Error; err != nil {
		return nil, err
	}
	return &contact, nil
}
