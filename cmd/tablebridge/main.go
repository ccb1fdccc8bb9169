package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	mcpGoServer "github.com/mark3labs/mcp-go/server"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"github.com/tablebridge/tablebridge/configs"
	"github.com/tablebridge/tablebridge/internal/adapter/inbound/adminhttp"
	"github.com/tablebridge/tablebridge/internal/adapter/inbound/mcptool"
	"github.com/tablebridge/tablebridge/internal/adapter/outbound/tablecheck"
	"github.com/tablebridge/tablebridge/internal/domain"
	"github.com/tablebridge/tablebridge/internal/location"
	"github.com/tablebridge/tablebridge/internal/usecase"
)

const (
	serverName    = "tablebridge"
	serverVersion = "0.1.0"
)

func main() {
	var transport string
	flag.StringVar(&transport, "transport", "sse", "Transport mode: sse or stdio")
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// .env is optional; real deployments set env vars directly.
	_ = godotenv.Load()

	cfg, err := configs.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	logLevel := cfg.ParsedLogLevel()
	var logger *slog.Logger
	if transport == "stdio" {
		// In stdio mode the pipe belongs to the protocol; log to a file.
		logFile, err := os.OpenFile("/tmp/tablebridge.log", os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			logger = slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: logLevel}))
		} else {
			logger = slog.New(slog.NewTextHandler(logFile, &slog.HandlerOptions{Level: logLevel}))
		}
	} else {
		logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel}))
	}
	slog.SetDefault(logger)
	logger.Info("Logger initialized.", slog.String("level", logLevel.String()), slog.String("transport", transport))

	shutdownOtel, err := initOtelProvider(cfg)
	if err != nil {
		logger.Error("Failed to initialize OpenTelemetry.", slog.Any("error", err))
		os.Exit(1)
	}
	defer func() {
		if err := shutdownOtel(context.Background()); err != nil {
			logger.Error("Failed to shutdown OpenTelemetry TracerProvider.", slog.Any("error", err))
		}
	}()

	// === Dependency Injection ===
	logger.Info("Initializing dependencies...")

	httpClient := &http.Client{Timeout: cfg.HTTPClientTimeout}

	gazetteer := cfg.GazetteerTable()
	places := location.NewResolver(gazetteer, logger)

	linkBuilder := tablecheck.NewLinkBuilder(cfg.BookingBaseURL)
	normalizer := tablecheck.NewNormalizer(linkBuilder, logger)
	client := tablecheck.NewClient(httpClient, cfg.UpstreamBaseURL, normalizer, logger)

	cuisinesUC := usecase.NewCuisineCatalogUseCase(client, logger)
	searchUC := usecase.NewSearchUseCase(client, cuisinesUC, places, logger)
	availabilityUC := usecase.NewAvailabilityUseCase(client, logger)
	linkUC := usecase.NewReservationLinkUseCase(linkBuilder, logger)

	mcpSrv := mcpGoServer.NewMCPServer(serverName, serverVersion)
	handlers := mcptool.NewHandlers(searchUC, availabilityUC, cuisinesUC, linkUC, logger)
	handlers.Register(mcpSrv)

	switch transport {
	case "stdio":
		logger.Info("Starting in STDIO mode")
		stdioServer := mcpGoServer.NewStdioServer(mcpSrv)
		if err := stdioServer.Listen(ctx, os.Stdin, os.Stdout); err != nil {
			logger.Error("STDIO server error", slog.Any("error", err))
			os.Exit(1)
		}

	case "sse":
		logger.Info("Starting in SSE mode")
		sseServer := mcpGoServer.NewSSEServer(mcpSrv, mcpGoServer.WithBaseURL("http://"+cfg.ListenAddr))

		upstreamURL := cfg.UpstreamBaseURL
		if upstreamURL == "" {
			upstreamURL = tablecheck.DefaultBaseURL
		}
		bookingURL := cfg.BookingBaseURL
		if bookingURL == "" {
			bookingURL = tablecheck.DefaultBookingBaseURL
		}
		adminHandlers := adminhttp.NewHandlers(adminhttp.ConfigSummary{
			UpstreamBaseURL: upstreamURL,
			BookingBaseURL:  bookingURL,
			DefaultLocale:   string(domain.DefaultLocale),
			GazetteerSize:   gazetteer.Len(),
		}, logger)
		adminServer := &http.Server{
			Addr:    cfg.AdminListenAddr,
			Handler: adminHandlers.Handler(),
		}
		go func() {
			logger.Info("Admin HTTP server starting.", slog.String("address", adminServer.Addr))
			if err := adminServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				logger.Error("Admin HTTP server failed to start.", slog.Any("error", err))
			}
		}()

		go func() {
			logger.Info("MCP SSE server starting.", slog.String("address", cfg.ListenAddr))
			if err := sseServer.Start(cfg.ListenAddr); err != nil && !errors.Is(err, http.ErrServerClosed) {
				logger.Error("MCP SSE server failed to start.", slog.Any("error", err))
				stop()
			}
		}()

		<-ctx.Done()

		logger.Info("Shutting down servers...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()

		if err := adminServer.Shutdown(shutdownCtx); err != nil {
			logger.Error("Admin HTTP server graceful shutdown failed.", slog.Any("error", err))
		}
		if err := sseServer.Shutdown(shutdownCtx); err != nil {
			logger.Error("MCP SSE server graceful shutdown failed.", slog.Any("error", err))
		}
		logger.Info("Servers shut down gracefully.")

	default:
		logger.Error("Invalid transport mode", slog.String("transport", transport))
		os.Exit(1)
	}
}

// initOtelProvider initializes the OpenTelemetry SDK and the OTLP trace
// exporter. It returns a shutdown function to be called on exit. Tracing
// is disabled entirely when no endpoint is configured.
func initOtelProvider(cfg *configs.Config) (func(context.Context) error, error) {
	ctx := context.Background()

	if cfg.OtelExporterOtlpEndpoint == "" {
		slog.Info("OTEL_EXPORTER_OTLP_ENDPOINT not set, OpenTelemetry tracing disabled.")
		return func(context.Context) error { return nil }, nil
	}

	slog.Info("Initializing OTLP exporter.", slog.String("endpoint", cfg.OtelExporterOtlpEndpoint))

	grpcOpts := []grpc.DialOption{}
	if cfg.OtelExporterOtlpInsecure {
		grpcOpts = append(grpcOpts, grpc.WithTransportCredentials(insecure.NewCredentials()))
		slog.Warn("Using insecure connection for OTLP exporter.")
	}

	conn, err := grpc.NewClient(cfg.OtelExporterOtlpEndpoint, grpcOpts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create gRPC connection to OTLP endpoint: %w", err)
	}

	traceExporter, err := otlptracegrpc.New(ctx, otlptracegrpc.WithGRPCConn(conn))
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("failed to create OTLP trace exporter: %w", err)
	}

	r, err := resource.Merge(
		resource.Default(),
		resource.NewWithAttributes(
			semconv.SchemaURL,
			semconv.ServiceNameKey.String(serverName),
		),
	)
	if err != nil {
		_ = traceExporter.Shutdown(ctx)
		_ = conn.Close()
		return nil, fmt.Errorf("failed to create resource: %w", err)
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(traceExporter),
		sdktrace.WithResource(r),
	)
	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(propagation.TraceContext{}, propagation.Baggage{}))

	slog.Info("OpenTelemetry TracerProvider configured.")

	return func(ctx context.Context) error {
		providerErr := tp.Shutdown(ctx)
		connErr := conn.Close()
		return errors.Join(providerErr, connErr)
	}, nil
}
