package database

import (
	"context"
	"database/sql"
	"fmt"

	"workbench/internal/models"
)

// GetAllEmployees returns the roster ordered by name.
func (d *Database) GetAllEmployees(ctx context.Context) ([]models.Employee, error) {
	rows, err := d.db.QueryContext(ctx,
		"SELECT id, name, group_id FROM employees ORDER BY name ASC")
	if err != nil {
		return nil, fmt.Errorf("query employees: %w", err)
	}
	defer rows.Close()

	var employees []models.Employee
	for rows.Next() {
		var e models.Employee
		var groupID sql.NullString
		if err := rows.Scan(&e.ID, &e.Name, &groupID); err != nil {
			return nil, fmt.Errorf("scan employee: %w", err)
		}
		e.GroupID = groupID.String
		employees = append(employees, e)
	}
	return employees, rows.Err()
}

// GetAllGroups returns all personnel groups ordered by name.
func (d *Database) GetAllGroups(ctx context.Context) ([]models.Group, error) {
	rows, err := d.db.QueryContext(ctx,
		"SELECT id, name, current_shift FROM groups ORDER BY name ASC")
	if err != nil {
		return nil, fmt.Errorf("query groups: %w", err)
	}
	defer rows.Close()

	var groups []models.Group
	for rows.Next() {
		var g models.Group
		var shift string
		if err := rows.Scan(&g.ID, &g.Name, &shift); err != nil {
			return nil, fmt.Errorf("scan group: %w", err)
		}
		g.CurrentShift = models.ShiftType(shift)
		groups = append(groups, g)
	}
	return groups, rows.Err()
}

// AddEmployee inserts a new employee.
func (d *Database) AddEmployee(ctx context.Context, e models.Employee) error {
	var groupID any
	if e.GroupID != "" {
		groupID = e.GroupID
	}
	_, err := d.db.ExecContext(ctx,
		"INSERT INTO employees (id, name, group_id) VALUES (?, ?, ?)",
		e.ID, e.Name, groupID)
	if err != nil {
		return fmt.Errorf("add employee: %w", err)
	}
	return nil
}

// AddGroup inserts a new personnel group.
func (d *Database) AddGroup(ctx context.Context, g models.Group) error {
	if g.CurrentShift == "" {
		g.CurrentShift = models.ShiftMorning
	}
	_, err := d.db.ExecContext(ctx,
		"INSERT INTO groups (id, name, current_shift) VALUES (?, ?, ?)",
		g.ID, g.Name, string(g.CurrentShift))
	if err != nil {
		return fmt.Errorf("add group: %w", err)
	}
	return nil
}

// UpdateEmployeeGroup moves an employee between groups. An empty groupID
// detaches the employee.
func (d *Database) UpdateEmployeeGroup(ctx context.Context, employeeID, groupID string) error {
	var arg any
	if groupID != "" {
		arg = groupID
	}
	res, err := d.db.ExecContext(ctx,
		"UPDATE employees SET group_id = ? WHERE id = ?", arg, employeeID)
	if err != nil {
		return fmt.Errorf("update employee group: %w", err)
	}
	return requireRow(res, "employee", employeeID)
}

// UpdateGroupShift sets a group's current shift assignment.
func (d *Database) UpdateGroupShift(ctx context.Context, groupID string, shift models.ShiftType) error {
	res, err := d.db.ExecContext(ctx,
		"UPDATE groups SET current_shift = ? WHERE id = ?", string(shift), groupID)
	if err != nil {
		return fmt.Errorf("update group shift: %w", err)
	}
	return requireRow(res, "group", groupID)
}

// GetCurrentShifts returns the schedule entries for a calendar day.
func (d *Database) GetCurrentShifts(ctx context.Context, date string) ([]models.ShiftSchedule, error) {
	rows, err := d.db.QueryContext(ctx, `
		SELECT date, group_id, shift_type
		FROM shift_schedules
		WHERE date = ?
		ORDER BY group_id ASC`, date)
	if err != nil {
		return nil, fmt.Errorf("query shifts: %w", err)
	}
	defer rows.Close()

	var schedules []models.ShiftSchedule
	for rows.Next() {
		var s models.ShiftSchedule
		var shift string
		if err := rows.Scan(&s.Date, &s.GroupID, &shift); err != nil {
			return nil, fmt.Errorf("scan shift: %w", err)
		}
		s.ShiftType = models.ShiftType(shift)
		schedules = append(schedules, s)
	}
	return schedules, rows.Err()
}

// SaveShifts upserts a batch of schedule entries in one transaction.
func (d *Database) SaveShifts(ctx context.Context, schedules []models.ShiftSchedule) error {
	tx, err := d.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin shift save: %w", err)
	}
	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO shift_schedules (date, group_id, shift_type)
		VALUES (?, ?, ?)
		ON CONFLICT(date, group_id) DO UPDATE SET shift_type = excluded.shift_type`)
	if err != nil {
		tx.Rollback()
		return fmt.Errorf("prepare shift save: %w", err)
	}
	defer stmt.Close()

	for _, s := range schedules {
		if _, err := stmt.ExecContext(ctx, s.Date, s.GroupID, string(s.ShiftType)); err != nil {
			tx.Rollback()
			return fmt.Errorf("save shift %s/%s: %w", s.Date, s.GroupID, err)
		}
	}
	return tx.Commit()
}
