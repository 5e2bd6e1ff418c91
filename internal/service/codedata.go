package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/samber/lo"

	"github.com/Surajsachintha/itams-haci-project/internal/entity"
	"github.com/Surajsachintha/itams-haci-project/internal/schema"
)

const auditPageCodeData = "codedata"

func (s *Service) table(name string) (schema.Table, error) {
	t, ok := s.catalog.Table(name)
	if !ok {
		return schema.Table{}, fmt.Errorf("table %q: %w", name, entity.ErrUnknownTable)
	}

	return t, nil
}

func (s *Service) writableTable(name string) (schema.Table, error) {
	t, err := s.table(name)
	if err != nil {
		return schema.Table{}, err
	}

	if t.ReadOnly {
		return schema.Table{}, fmt.Errorf("table %q: %w", name, entity.ErrReadOnlyTable)
	}

	return t, nil
}

// CodeTableRows returns every row of a catalog table. With resolve set each foreign key
// column gets a companion <column>_label entry.
func (s *Service) CodeTableRows(ctx context.Context, table string, resolve bool) ([]entity.Record, error) {
	t, err := s.table(table)
	if err != nil {
		return nil, err
	}

	rows, err := s.gateway.Select(ctx, t)
	if err != nil {
		return nil, fmt.Errorf("select %s: %w", table, err)
	}

	if !resolve || len(rows) == 0 {
		return rows, nil
	}

	lookups, err := s.ResolveLookups(ctx, table)
	if err != nil {
		return nil, err
	}

	for _, row := range rows {
		for col, l := range lookups {
			v, ok := row[col]
			if !ok || v == nil {
				continue
			}

			if label, ok := l.Labels[fmt.Sprint(v)]; ok {
				row[col+"_label"] = label
			}
		}
	}

	return rows, nil
}

// ResolveLookups builds the label maps of the SELECT columns of a table. A column whose
// metadata is broken is skipped and the rest still resolve.
func (s *Service) ResolveLookups(ctx context.Context, table string) (entity.LookupSet, error) {
	t, err := s.table(table)
	if err != nil {
		return nil, err
	}

	cols, err := s.codeData.EditingColumns(ctx, table)
	if err != nil {
		return nil, fmt.Errorf("editing columns of %s: %w", table, err)
	}

	set := make(entity.LookupSet)

	for _, c := range lo.Filter(cols, func(c entity.EditingColumn, _ int) bool {
		return c.InputType == entity.InputTypeSelect
	}) {
		l, err := s.resolveColumn(ctx, t, c)
		if err != nil {
			slog.WarnContext(ctx, "skip lookup column", "table", table, "column", c.ColumnName, "error", err)
			continue
		}

		set[c.ColumnName] = l
	}

	return set, nil
}

func (s *Service) resolveColumn(ctx context.Context, t schema.Table, c entity.EditingColumn) (entity.Lookup, error) {
	if !t.HasColumn(c.ColumnName) {
		return entity.Lookup{}, &schema.ValidationError{Table: t.Name, Column: c.ColumnName, Reason: "unknown column"}
	}

	if c.CodeTableName == nil || c.CodeID == nil || c.CodeName == nil {
		return entity.Lookup{}, &schema.ValidationError{Table: t.Name, Column: c.ColumnName, Reason: "incomplete lookup metadata"}
	}

	src, err := s.table(*c.CodeTableName)
	if err != nil {
		return entity.Lookup{}, err
	}

	pairs, err := s.gateway.Pairs(ctx, src, *c.CodeID, *c.CodeName)
	if err != nil {
		return entity.Lookup{}, fmt.Errorf("pairs of %s: %w", src.Name, err)
	}

	l := entity.Lookup{
		Column:  c.ColumnName,
		Source:  src.Name,
		Labels:  make(map[string]string, len(pairs)),
		Options: make([]entity.LookupEntry, 0, len(pairs)),
	}

	for _, p := range pairs {
		label := fmt.Sprint(p[*c.CodeName])

		l.Labels[fmt.Sprint(p[*c.CodeID])] = label
		l.Options = append(l.Options, entity.LookupEntry{Value: p[*c.CodeID], Label: label})
	}

	return l, nil
}

// LookupEntries reads an id/label pair of columns from a catalog table.
func (s *Service) LookupEntries(ctx context.Context, table, idColumn, labelColumn string) ([]entity.Record, error) {
	t, err := s.table(table)
	if err != nil {
		return nil, err
	}

	rows, err := s.gateway.Pairs(ctx, t, idColumn, labelColumn)
	if err != nil {
		return nil, fmt.Errorf("pairs of %s: %w", table, err)
	}

	return rows, nil
}

func (s *Service) EditingColumns(ctx context.Context, table string) ([]entity.EditingColumn, error) {
	_, err := s.table(table)
	if err != nil {
		return nil, err
	}

	cols, err := s.codeData.EditingColumns(ctx, table)
	if err != nil {
		return nil, fmt.Errorf("editing columns of %s: %w", table, err)
	}

	return cols, nil
}

func (s *Service) Stations(ctx context.Context) ([]entity.Station, error) {
	stations, err := s.codeData.Stations(ctx)
	if err != nil {
		return nil, fmt.Errorf("list stations: %w", err)
	}

	return stations, nil
}

func (s *Service) DeviceTypes(ctx context.Context, categoryID int64) ([]entity.DeviceType, error) {
	types, err := s.codeData.DeviceTypes(ctx, categoryID)
	if err != nil {
		return nil, fmt.Errorf("device types of category %d: %w", categoryID, err)
	}

	return types, nil
}

func (s *Service) Models(ctx context.Context, typeID, brandID int64) ([]entity.Model, error) {
	models, err := s.codeData.Models(ctx, typeID, brandID)
	if err != nil {
		return nil, fmt.Errorf("models of type %d brand %d: %w", typeID, brandID, err)
	}

	return models, nil
}

func (s *Service) DynamicInsert(ctx context.Context, caller entity.Identity, table string, rec entity.Record) (entity.WriteResult, error) {
	t, err := s.writableTable(table)
	if err != nil {
		return entity.WriteResult{}, err
	}

	vals, err := t.ValidateRecord(rec, schema.ModeInsert)
	if err != nil {
		return entity.WriteResult{}, err
	}

	id, err := s.gateway.Insert(ctx, t, vals)
	if err != nil {
		return entity.WriteResult{}, fmt.Errorf("insert into %s: %w", table, err)
	}

	s.recordAudit(ctx, caller, auditPageCodeData+"/"+table, entity.AuditEventInsert, id, vals.Map())

	return entity.WriteResult{InsertID: id, AffectedRows: 1}, nil
}

func (s *Service) DynamicUpdate(ctx context.Context, caller entity.Identity, table string, id any, rec entity.Record) (entity.WriteResult, error) {
	t, err := s.writableTable(table)
	if err != nil {
		return entity.WriteResult{}, err
	}

	key, err := t.ValidateKey(id)
	if err != nil {
		return entity.WriteResult{}, err
	}

	vals, err := t.ValidateUpdate(key, rec)
	if err != nil {
		return entity.WriteResult{}, err
	}

	n, err := s.gateway.Update(ctx, t, key, vals)
	if err != nil {
		return entity.WriteResult{}, fmt.Errorf("update %s: %w", table, err)
	}

	s.recordAudit(ctx, caller, auditPageCodeData+"/"+table, entity.AuditEventUpdate, key, vals.Map())

	return entity.WriteResult{AffectedRows: n}, nil
}

func (s *Service) DynamicDelete(ctx context.Context, caller entity.Identity, table string, id any) (entity.WriteResult, error) {
	t, err := s.writableTable(table)
	if err != nil {
		return entity.WriteResult{}, err
	}

	key, err := t.ValidateKey(id)
	if err != nil {
		return entity.WriteResult{}, err
	}

	n, err := s.gateway.Delete(ctx, t, key)
	if err != nil {
		return entity.WriteResult{}, fmt.Errorf("delete from %s: %w", table, err)
	}

	if n > 0 {
		s.recordAudit(ctx, caller, auditPageCodeData+"/"+table, entity.AuditEventDelete, key, nil)
	}

	return entity.WriteResult{AffectedRows: n}, nil
}
