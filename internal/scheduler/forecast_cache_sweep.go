// Package scheduler contém os serviços agendados da aplicação
package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-dashboard/internal/config"
)

// CacheSweeper remove entradas expiradas de um cache e retorna quantas saíram
type CacheSweeper interface {
	SweepCache() int
}

type ForecastCacheSweepConfig struct {
	CronSchedule string
	SyncEnabled  bool
}

type ForecastCacheSweepService struct {
	scheduler           *gocron.Scheduler
	sweeper             CacheSweeper
	config              ForecastCacheSweepConfig
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
	lastRemoved         int
}

func NewForecastCacheSweepService(sweeper CacheSweeper, cfg *config.Config) *ForecastCacheSweepService {
	sweepConfig := ForecastCacheSweepConfig{
		CronSchedule: cfg.ForecastCacheSweep.CronSchedule,
		SyncEnabled:  cfg.ForecastCacheSweep.Enabled,
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule": sweepConfig.CronSchedule,
	}).Info("Configuração da limpeza do cache de previsões carregada")

	return &ForecastCacheSweepService{
		scheduler: gocron.NewScheduler(time.Local),
		sweeper:   sweeper,
		config:    sweepConfig,
	}
}

func (s *ForecastCacheSweepService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Cron de limpeza do cache de previsões desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando cron de limpeza do cache de previsões")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.SweepForecastCache()
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar limpeza do cache de previsões: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando cron de limpeza do cache de previsões")
		s.scheduler.Stop()
	}()

	return nil
}

// SweepForecastCache executa uma limpeza e retorna quantas entradas foram removidas
func (s *ForecastCacheSweepService) SweepForecastCache() int {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Warn("Limpeza do cache de previsões já está em execução")
		return 0
	}
	s.syncRunning = true
	s.lastSyncStartedAt = time.Now()
	s.syncMutex.Unlock()

	removed := s.sweeper.SweepCache()

	s.syncMutex.Lock()
	s.syncRunning = false
	s.lastSyncCompletedAt = time.Now()
	s.lastRemoved = removed
	s.syncMutex.Unlock()

	logrus.WithField("cache_removed", removed).Info("Limpeza do cache de previsões concluída")

	return removed
}

// TriggerManualSync inicia manualmente uma limpeza do cache
func (s *ForecastCacheSweepService) TriggerManualSync() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Limpeza do cache de previsões já em andamento, ignorando solicitação manual")
		return
	}
	s.syncMutex.Unlock()

	logrus.Info("Iniciando limpeza manual do cache de previsões")
	go s.SweepForecastCache()
}

// GetStatus retorna o status atual do agendador
func (s *ForecastCacheSweepService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	return map[string]any{
		"sync_enabled":           s.config.SyncEnabled,
		"sync_cron":              s.config.CronSchedule,
		"sync_running":           s.syncRunning,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
		"last_removed":           s.lastRemoved,
	}
}
