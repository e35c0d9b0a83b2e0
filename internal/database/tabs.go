package database

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"workbench/internal/models"
)

// GetTabs returns all persisted dynamic tabs, oldest first.
func (d *Database) GetTabs(ctx context.Context) ([]models.Tab, error) {
	rows, err := d.db.QueryContext(ctx, `
		SELECT id, label, type, layout, table_name, fields, created_at
		FROM tabs
		ORDER BY created_at ASC`)
	if err != nil {
		return nil, fmt.Errorf("query tabs: %w", err)
	}
	defer rows.Close()

	var tabs []models.Tab
	for rows.Next() {
		var t models.Tab
		var layoutJSON, fieldsJSON, createdAt string
		var tableName sql.NullString
		if err := rows.Scan(&t.ID, &t.Label, &t.Type, &layoutJSON, &tableName, &fieldsJSON, &createdAt); err != nil {
			return nil, fmt.Errorf("scan tab: %w", err)
		}
		if err := json.Unmarshal([]byte(layoutJSON), &t.Layout); err != nil {
			return nil, fmt.Errorf("decode layout for tab %s: %w", t.ID, err)
		}
		if err := json.Unmarshal([]byte(fieldsJSON), &t.Database.Fields); err != nil {
			return nil, fmt.Errorf("decode fields for tab %s: %w", t.ID, err)
		}
		t.Database.TableName = tableName.String
		t.CreatedAt = parseTime(createdAt)
		tabs = append(tabs, t)
	}
	return tabs, rows.Err()
}

// CreateTab persists a new dynamic tab with its layout.
func (d *Database) CreateTab(ctx context.Context, tab models.Tab) error {
	layoutJSON, err := json.Marshal(tab.Layout)
	if err != nil {
		return fmt.Errorf("encode layout: %w", err)
	}
	fieldsJSON, err := json.Marshal(tab.Database.Fields)
	if err != nil {
		return fmt.Errorf("encode fields: %w", err)
	}
	if tab.CreatedAt.IsZero() {
		tab.CreatedAt = time.Now()
	}
	_, err = d.db.ExecContext(ctx, `
		INSERT INTO tabs (id, label, type, layout, table_name, fields, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		tab.ID, tab.Label, tab.Type, string(layoutJSON),
		tab.Database.TableName, string(fieldsJSON), formatTime(tab.CreatedAt))
	if err != nil {
		return fmt.Errorf("insert tab: %w", err)
	}
	return nil
}

// UpdateTab replaces a tab's label and layout.
func (d *Database) UpdateTab(ctx context.Context, tab models.Tab) error {
	layoutJSON, err := json.Marshal(tab.Layout)
	if err != nil {
		return fmt.Errorf("encode layout: %w", err)
	}
	res, err := d.db.ExecContext(ctx, `
		UPDATE tabs SET label = ?, layout = ? WHERE id = ?`,
		tab.Label, string(layoutJSON), tab.ID)
	if err != nil {
		return fmt.Errorf("update tab: %w", err)
	}
	return requireRow(res, "tab", tab.ID)
}

// DeleteTab removes a tab by id.
func (d *Database) DeleteTab(ctx context.Context, id string) error {
	_, err := d.db.ExecContext(ctx, "DELETE FROM tabs WHERE id = ?", id)
	return err
}

// GetTemplates lists saved layout templates, newest first.
func (d *Database) GetTemplates(ctx context.Context) ([]models.Template, error) {
	rows, err := d.db.QueryContext(ctx, `
		SELECT id, name, layout, created_at
		FROM templates
		ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("query templates: %w", err)
	}
	defer rows.Close()

	var tpls []models.Template
	for rows.Next() {
		var t models.Template
		var layoutJSON, createdAt string
		if err := rows.Scan(&t.ID, &t.Name, &layoutJSON, &createdAt); err != nil {
			return nil, fmt.Errorf("scan template: %w", err)
		}
		if err := json.Unmarshal([]byte(layoutJSON), &t.Layout); err != nil {
			return nil, fmt.Errorf("decode template %s: %w", t.ID, err)
		}
		t.CreatedAt = parseTime(createdAt)
		tpls = append(tpls, t)
	}
	return tpls, rows.Err()
}

// SaveTemplate upserts a named layout template.
func (d *Database) SaveTemplate(ctx context.Context, tpl models.Template) error {
	layoutJSON, err := json.Marshal(tpl.Layout)
	if err != nil {
		return fmt.Errorf("encode template layout: %w", err)
	}
	if tpl.CreatedAt.IsZero() {
		tpl.CreatedAt = time.Now()
	}
	_, err = d.db.ExecContext(ctx, `
		INSERT INTO templates (id, name, layout, created_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET name = excluded.name, layout = excluded.layout`,
		tpl.ID, tpl.Name, string(layoutJSON), formatTime(tpl.CreatedAt))
	if err != nil {
		return fmt.Errorf("save template: %w", err)
	}
	return nil
}

// DeleteTemplate removes a template by id.
func (d *Database) DeleteTemplate(ctx context.Context, id string) error {
	_, err := d.db.ExecContext(ctx, "DELETE FROM templates WHERE id = ?", id)
	return err
}
