package config

import (
	"context"
	"log"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type (
	Bootstrap struct {
		Router         *chi.Mux
		Logger         *zap.Logger
		DriverConfig   *DriverConfig
		InternalConfig *InternalConfig
	}

	InternalConfig struct {
		App        App
		Extraction Extraction
	}

	DriverConfig struct {
		Logger Logger
	}

	App struct {
		Env                        string
		Port                       string
		Version                    string
		Address                    string
		Timezone                   string
		EndpointPrefix             string
		MaxRequests                int
		ShutdownTimeout            int
		RequestBodyLimitInMegabyte int
	}

	Extraction struct {
		MaxDocumentSizeInKilobyte int
		RequestTimeoutInSeconds   int
	}

	Logger struct {
		Level               string
		OutputFileName      string
		OutputErrorFileName string
	}
)

func (b *Bootstrap) Shutdown(ctx context.Context) error {
	err := b.Logger.Sync()
	if err != nil {
		return err
	}
	log.Println("Successfully closing Logger")
	return nil
}
