package companies

import (
	"fieldtrack/internal/storage"
	"time"

	"github.com/google/uuid"
)

func init() {
	storage.RegisterModel(&Company{})
}

type Company struct {
	ID        uuid.UUID `json:"id"        gorm:"column:id;primaryKey"`
	Name      string    `json:"name"      gorm:"column:name"`
	CreatedAt time.Time `json:"createdAt" gorm:"column:created_at"`
}

func (Company) TableName() string {
	return "companies"
}
