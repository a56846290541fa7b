package database

import "github.com/nicolaschoi7042/itNswinventory-sub004/internal/models"

// helper for writing audit trail rows; failures are not surfaced to the
// request path
func CreateAuditLog(userID uint, entity string, entityID uint, action, details string) {
	if DB == nil {
		return
	}
	record := models.AuditLog{
		UserID:   userID,
		Entity:   entity,
		EntityID: entityID,
		Action:   action,
		Details:  details,
	}
	_ = DB.Create(&record).Error
}
