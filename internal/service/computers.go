package service

import (
	"context"
	"fmt"

	"github.com/Surajsachintha/itams-haci-project/internal/entity"
)

const auditPageComputers = "computers"

func (s *Service) Computers(ctx context.Context, caller entity.Identity) ([]entity.ComputerView, error) {
	stations, err := s.stationScope(ctx, caller)
	if err != nil {
		return nil, err
	}

	computers, err := s.computers.Computers(ctx, stations)
	if err != nil {
		return nil, fmt.Errorf("list computers: %w", err)
	}

	return computers, nil
}

func (s *Service) CreateComputerSpec(ctx context.Context, caller entity.Identity, spec entity.ComputerSpec) (entity.WriteResult, error) {
	if spec.DeviceID <= 0 {
		return entity.WriteResult{}, invalid("device_id", "is required")
	}

	id, err := s.computers.CreateSpec(ctx, spec, caller.ID)
	if err != nil {
		return entity.WriteResult{}, fmt.Errorf("create computer spec: %w", err)
	}

	s.recordAudit(ctx, caller, auditPageComputers, entity.AuditEventInsert, id, spec)

	return entity.WriteResult{InsertID: id, AffectedRows: 1}, nil
}

func (s *Service) UpdateComputerSpec(ctx context.Context, caller entity.Identity, id int64, spec entity.ComputerSpec) (entity.WriteResult, error) {
	n, err := s.computers.UpdateSpec(ctx, id, spec, caller.ID)
	if err != nil {
		return entity.WriteResult{}, fmt.Errorf("update computer spec %d: %w", id, err)
	}

	s.recordAudit(ctx, caller, auditPageComputers, entity.AuditEventUpdate, id, spec)

	return entity.WriteResult{AffectedRows: n}, nil
}
