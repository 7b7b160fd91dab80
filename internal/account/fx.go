package account

import (
	"go.uber.org/fx"

	"github.com/basssoft/arms/internal/account/repository"
	"github.com/basssoft/arms/internal/account/service"
)

var Module = fx.Module("account.service",
	fx.Provide(repository.New),
	fx.Provide(service.New),
)
