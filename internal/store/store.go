// Package store persists recorded model invocations for the tracefire
// service.
package store

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/tidwall/sjson"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/tracefire-io/tracefire/internal/actionlog"
	"github.com/tracefire-io/tracefire/internal/models"
)

// ErrNotFound is returned when a delete targets a record that does not exist.
var ErrNotFound = errors.New("record not found")

// secretParamKeys are top-level parameter fields stripped before a record is
// persisted. The viewer renders params verbatim, so credentials must never
// reach the database.
var secretParamKeys = []string{"api_key", "apiKey", "authorization", "access_token"}

// CallRecord is the database row for one model invocation.
type CallRecord struct {
	ID               string `gorm:"primaryKey;size:64"`
	AgentID          string `gorm:"size:64;index:idx_agent_room"`
	RoomID           string `gorm:"size:64;index:idx_agent_room"`
	Type             string `gorm:"size:64"`
	CreatedAt        int64  `gorm:"index"`
	Message          string
	Details          string
	ModelType        string `gorm:"size:64;index"`
	ModelKey         string `gorm:"size:128"`
	Params           string
	Response         string
	PromptTokens     int64
	CompletionTokens int64
	TotalTokens      int64
}

// Store wraps the SQLite database holding recorded invocations.
type Store struct {
	db *gorm.DB
}

// Open opens (creating if needed) the database at path and migrates the
// schema.
func Open(path string) (*Store, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open database %s: %w", path, err)
	}
	if err := db.AutoMigrate(&CallRecord{}); err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}
	return &Store{db: db}, nil
}

// Insert persists one invocation. A missing ID gets a generated UUID;
// secret-looking parameter fields are stripped first.
func (s *Store) Insert(agentID string, call models.ModelCall) (string, error) {
	if call.ID == "" {
		call.ID = uuid.NewString()
	}

	params := sanitizeParams(call.Body.Params)

	rec := CallRecord{
		ID:        call.ID,
		AgentID:   agentID,
		RoomID:    call.RoomID,
		Type:      call.Type,
		CreatedAt: call.CreatedAt,
		Message:   call.Message,
		Details:   call.Details,
		ModelType: call.Body.ModelType,
		ModelKey:  call.Body.ModelKey,
		Params:    params,
		Response:  string(call.Body.Response),
	}
	if u := actionlog.ExtractTokenUsage(call.Body); u != nil {
		rec.PromptTokens = u.Prompt
		rec.CompletionTokens = u.Completion
		rec.TotalTokens = u.Total
	}

	if err := s.db.Create(&rec).Error; err != nil {
		return "", fmt.Errorf("failed to insert record: %w", err)
	}
	return rec.ID, nil
}

// List returns an agent's invocations in creation order. roomID narrows to a
// room when non-empty; excludeTypes drops matching model types entirely.
func (s *Store) List(agentID, roomID string, excludeTypes []string) ([]models.ModelCall, error) {
	query := s.db.Model(&CallRecord{}).Where("agent_id = ?", agentID)
	if roomID != "" {
		query = query.Where("room_id = ?", roomID)
	}
	if len(excludeTypes) > 0 {
		query = query.Where("model_type NOT IN ?", excludeTypes)
	}

	var recs []CallRecord
	if err := query.Order("created_at ASC, id ASC").Find(&recs).Error; err != nil {
		return nil, fmt.Errorf("failed to list records: %w", err)
	}

	calls := make([]models.ModelCall, 0, len(recs))
	for _, rec := range recs {
		calls = append(calls, rec.toModelCall())
	}
	return calls, nil
}

// Delete removes one record, reporting ErrNotFound when nothing matched.
func (s *Store) Delete(agentID, logID string) error {
	res := s.db.Where("agent_id = ? AND id = ?", agentID, logID).Delete(&CallRecord{})
	if res.Error != nil {
		return fmt.Errorf("failed to delete record: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// Stats aggregates an agent's activity per model key.
func (s *Store) Stats(agentID string) (*models.AgentStats, error) {
	stats := &models.AgentStats{AgentID: agentID}

	err := s.db.Model(&CallRecord{}).
		Select("COUNT(*) as total_calls, COALESCE(SUM(total_tokens), 0) as total_tokens").
		Where("agent_id = ?", agentID).
		Row().Scan(&stats.TotalCalls, &stats.TotalTokens)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate totals: %w", err)
	}

	var groups []models.ModelStats
	err = s.db.Model(&CallRecord{}).
		Select("model_key, model_type, COUNT(*) as calls, COALESCE(SUM(total_tokens), 0) as total_tokens").
		Where("agent_id = ?", agentID).
		Group("model_key, model_type").
		Order("calls DESC").
		Scan(&groups).Error
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate per model: %w", err)
	}
	stats.Models = groups

	return stats, nil
}

func (rec CallRecord) toModelCall() models.ModelCall {
	call := models.ModelCall{
		ID:        rec.ID,
		Type:      rec.Type,
		CreatedAt: rec.CreatedAt,
		Message:   rec.Message,
		Details:   rec.Details,
		RoomID:    rec.RoomID,
		Body: models.ModelCallBody{
			ModelType: rec.ModelType,
			ModelKey:  rec.ModelKey,
		},
	}
	if rec.Params != "" {
		call.Body.Params = json.RawMessage(rec.Params)
	}
	if rec.Response != "" {
		call.Body.Response = json.RawMessage(rec.Response)
	}
	if rec.TotalTokens > 0 || rec.PromptTokens > 0 || rec.CompletionTokens > 0 {
		call.Body.Usage = &models.TokenUsage{
			Prompt:     rec.PromptTokens,
			Completion: rec.CompletionTokens,
			Total:      rec.TotalTokens,
		}
	}
	return call
}

// sanitizeParams strips secret-looking top-level fields from a params
// payload. Non-object payloads pass through untouched.
func sanitizeParams(raw json.RawMessage) string {
	if len(raw) == 0 {
		return ""
	}
	out := string(raw)
	for _, key := range secretParamKeys {
		cleaned, err := sjson.Delete(out, key)
		if err != nil {
			continue
		}
		out = cleaned
	}
	return out
}
