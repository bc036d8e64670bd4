package service

import (
	"context"
	"fmt"

	repository "github.com/clubhub/clubhub-api/internal/database/postgres"
	"github.com/clubhub/clubhub-api/internal/entity"
)

const auditLogLimit = 500

type adminService struct {
	adminRepo repository.AdminRepository
}

// NewAdminService creates a new instance of AdminService
func NewAdminService(adminRepo repository.AdminRepository) AdminService {
	return &adminService{adminRepo: adminRepo}
}

func (s *adminService) GetAuditLogs(ctx context.Context) ([]*entity.AuditLogEntry, error) {
	logs, err := s.adminRepo.GetAuditLogs(ctx, auditLogLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to get audit logs: %w", err)
	}

	return logs, nil
}

func (s *adminService) GetUnresolvedAlerts(ctx context.Context) ([]*entity.Alert, error) {
	alerts, err := s.adminRepo.GetUnresolvedAlerts(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get alerts: %w", err)
	}

	return alerts, nil
}

func (s *adminService) ResolveAlert(ctx context.Context, alertID int64) error {
	if err := s.adminRepo.ResolveAlert(ctx, alertID); err != nil {
		if err == entity.ErrAlertNotFound {
			return err
		}
		return fmt.Errorf("failed to resolve alert: %w", err)
	}

	return nil
}

func (s *adminService) GetSystemMetrics(ctx context.Context) (*entity.SystemMetrics, error) {
	metrics, err := s.adminRepo.GetSystemMetrics(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get system metrics: %w", err)
	}

	return metrics, nil
}
