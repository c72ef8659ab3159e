package notification

import (
	"errors"
	"time"
)

var ErrNotFound = errors.New("notification not found")

type Category string

const (
	CategoryInfo         Category = "INFO"
	CategoryMatch        Category = "MATCH"
	CategoryStatusChange Category = "STATUS_CHANGE"
	CategoryAdminMessage Category = "ADMIN_MESSAGE"
)

type Notification struct {
	ID             uint64   `gorm:"column:id;primaryKey;autoIncrement" json:"-"`
	NotificationID string   `gorm:"column:notification_id;type:char(32);not null;uniqueIndex:ux_notifications_public_id" json:"notification_id"`
	OwnerID        string   `gorm:"column:owner_id;type:char(32);not null;index" json:"owner_id"`
	DeclarationID  *uint64  `gorm:"column:declaration_id;index" json:"-"`
	Category       Category `gorm:"column:category;type:enum('INFO','MATCH','STATUS_CHANGE','ADMIN_MESSAGE');not null" json:"category"`
	Title          string   `gorm:"column:title;size:200;not null" json:"title"`
	Body           string   `gorm:"column:body;type:text;not null" json:"body"`
	Read           bool     `gorm:"column:read_flag;default:false" json:"read"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"-"`
}

func (Notification) TableName() string { return "notifications" }
