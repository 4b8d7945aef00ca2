//go:build wireinject
// +build wireinject

package main

import (
	"github.com/google/wire"

	"github.com/yanqian/campus-helpdesk/internal/bootstrap"
	"github.com/yanqian/campus-helpdesk/internal/domain/helpdesk"
	"github.com/yanqian/campus-helpdesk/internal/infra/config"
	httpiface "github.com/yanqian/campus-helpdesk/internal/interface/http"
	"github.com/yanqian/campus-helpdesk/pkg/logger"
)

func initializeApp() (*bootstrap.App, error) {
	wire.Build(
		config.Load,
		logger.New,
		provideCollegeSource,
		provideCatalog,
		provideAliasTable,
		provideHelpdesk,
		provideHelpdeskConfig,
		provideStatsStore,
		provideMetricsRecorder,
		provideGatherer,
		helpdesk.NewService,
		httpiface.NewHandler,
		httpiface.NewRouter,
		bootstrap.NewApp,
	)
	return nil, nil
}
