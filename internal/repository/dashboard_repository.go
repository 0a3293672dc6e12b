package repository

import (
	"time"

	"simitra-backend/internal/model"

	"gorm.io/gorm"
)

type DashboardRepository interface {
	GetDashboardStats(now time.Time) (map[string]interface{}, error)
}

type dashboardRepository struct {
	db *gorm.DB
}

func NewDashboardRepository(db *gorm.DB) DashboardRepository {
	return &dashboardRepository{db}
}

func (r *dashboardRepository) GetDashboardStats(now time.Time) (map[string]interface{}, error) {
	stats := make(map[string]interface{})

	counts := []struct {
		key   string
		query *gorm.DB
	}{
		{"total_kegiatan", r.db.Model(&model.Kegiatan{})},
		{"total_subkegiatan", r.db.Model(&model.Subkegiatan{})},
		{"total_mitra", r.db.Model(&model.Mitra{})},
		{"pengajuan_pending", r.db.Model(&model.PengajuanMitra{}).Where("status = ?", model.PengajuanPending)},
	}
	for _, c := range counts {
		var n int64
		if err := c.query.Count(&n).Error; err != nil {
			return nil, err
		}
		stats[c.key] = n
	}

	// Status rekrutmen tidak disimpan, jadi dihitung ulang dari jendela open/close.
	var windows []struct {
		OpenReq  model.Date
		CloseReq model.Date
	}
	if err := r.db.Model(&model.Subkegiatan{}).Select("open_req, close_req").Scan(&windows).Error; err != nil {
		return nil, err
	}
	rekrutmen := map[string]int64{model.RekrutmenPending: 0, model.RekrutmenOpen: 0, model.RekrutmenClosed: 0, "belum_diatur": 0}
	for _, w := range windows {
		status := model.RecruitmentStatusAt(w.OpenReq, w.CloseReq, now)
		if status == "" {
			status = "belum_diatur"
		}
		rekrutmen[status]++
	}
	stats["rekrutmen"] = rekrutmen

	// Subkegiatan per status pelaksanaan
	var byStatus []struct {
		Status string
		Count  int64
	}
	if err := r.db.Model(&model.Subkegiatan{}).Group("status").Select("status, count(*) as count").Scan(&byStatus).Error; err != nil {
		return nil, err
	}
	statusMap := map[string]int64{model.SubStatusPending: 0, model.SubStatusDone: 0}
	for _, s := range byStatus {
		statusMap[s.Status] = s.Count
	}
	stats["subkegiatan_status"] = statusMap

	return stats, nil
}
