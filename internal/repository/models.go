package repository

import "time"

type User struct {
	ID           uint    `gorm:"primaryKey"`
	Username     string  `gorm:"type:varchar(32);uniqueIndex;not null"`
	Email        string  `gorm:"type:varchar(255);uniqueIndex;not null"`
	PasswordHash string  `gorm:"not null"`
	Bio          string  `gorm:"type:text;not null;default:''"`
	AvatarURL    *string `gorm:"type:text"`
	ThemeHex     *string `gorm:"type:varchar(16);default:'#00ff88'"`
	CreatedAt    time.Time
	Links        []Link `gorm:"constraint:OnDelete:CASCADE"`
}

type Link struct {
	ID         uint    `gorm:"primaryKey"`
	UserID     uint    `gorm:"not null;index"`
	Title      string  `gorm:"type:varchar(100);not null"`
	URL        string  `gorm:"type:text;not null"`
	Icon       *string `gorm:"type:varchar(8)"`
	OrderIndex int     `gorm:"not null;default:0;index"`
}

// LinkChange is one entry of a full link-set replacement.
type LinkChange struct {
	Title      string
	URL        string
	Icon       *string
	OrderIndex int
}

// ProfileChanges carries a partial profile update. Nil pointers leave the
// stored value untouched; a pointer to an empty string clears it. A nil
// Links slice leaves the link set untouched, a non-nil one replaces it
// entirely.
type ProfileChanges struct {
	Bio       *string
	AvatarURL *string
	ThemeHex  *string
	Links     []LinkChange
}
