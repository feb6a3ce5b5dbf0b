package model

import (
	"time"

	"github.com/google/uuid"
)

// UserProfileModel is the GORM-specific struct for the 'user_profiles' table.
// UserID comes from the campus identity provider, so it doubles as the
// primary key instead of a generated ID.
type UserProfileModel struct {
	UserID             uuid.UUID  `gorm:"type:uuid;primary_key"`
	PhoneNumber        string     `gorm:"type:varchar(32)"`
	HostelOrOfficeName string     `gorm:"type:varchar(255)"`
	RoomOrOfficeNumber string     `gorm:"type:varchar(64)"`
	Role               string     `gorm:"type:varchar(32);not null;default:'student'"`
	ShopID             *int64     `gorm:"index"`
	Shop               *ShopModel `gorm:"foreignKey:ShopID"`
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// TableName explicitly sets the table name for GORM.
func (UserProfileModel) TableName() string {
	return "user_profiles"
}
