package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"

	"society-admin-svc/internal/apiclient"
	"society-admin-svc/internal/config"
	"society-admin-svc/internal/repository"
	"society-admin-svc/internal/service"
	"society-admin-svc/internal/session"
	"society-admin-svc/pkg/logger"
)

// DefaultProfile is the session used when --profile is not set
const DefaultProfile = "default"

// Options are the persistent flags of the root command
type Options struct {
	APIURL      string
	SessionFile string
	Profile     string
	LogLevel    string
}

// App holds everything a command needs once the flags are parsed
type App struct {
	Out     io.Writer
	Err     io.Writer
	Logger  *logger.Logger
	Session *session.Scoped
	Client  *apiclient.Client

	Auth      service.AuthService
	Dashboard service.DashboardService
	Society   service.SocietyService
	Notice    service.NoticeService
	Amenity   service.AmenityService
	Complaint service.ComplaintService
	Payment   service.PaymentService
	User      service.UserService
}

// NewApp wires the services the same way the server does, over a session file
func NewApp(opts Options, out, errOut io.Writer) (*App, error) {
	_ = godotenv.Load()

	baseURL := opts.APIURL
	if baseURL == "" {
		baseURL = os.Getenv("API_BASE_URL")
	}
	if baseURL == "" {
		return nil, fmt.Errorf("API URL is not set; pass --api-url or set API_BASE_URL")
	}

	sessionFile := opts.SessionFile
	if sessionFile == "" {
		dir, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		sessionFile = filepath.Join(dir, ".societyctl", "session.json")
	}
	if err := os.MkdirAll(filepath.Dir(sessionFile), 0o700); err != nil {
		return nil, fmt.Errorf("failed to create session directory: %w", err)
	}

	profile := opts.Profile
	if profile == "" {
		profile = DefaultProfile
	}

	log := logger.NewLogger(opts.LogLevel, "text")
	log.SetOutput(errOut)

	scoped := session.Bind(session.NewFileStore(sessionFile), profile, session.DefaultTTL)
	navigator := apiclient.NavigatorFunc(func(_ context.Context, _ string) {
		fmt.Fprintf(errOut, "Session expired or access denied. Run `societyctl login --profile %s` to sign in again.\n", profile)
	})

	client := apiclient.New(
		apiclient.Config{BaseURL: baseURL, Timeout: config.DefaultAPITimeout},
		apiclient.WithStorage(scoped),
		apiclient.WithNavigator(navigator),
		apiclient.WithLogger(log),
	)

	societyRepo := repository.NewSocietyRepository(client)
	noticeRepo := repository.NewNoticeRepository(client)
	amenityRepo := repository.NewAmenityRepository(client)
	complaintRepo := repository.NewComplaintRepository(client)
	paymentRepo := repository.NewPaymentRepository(client)

	return &App{
		Out:       out,
		Err:       errOut,
		Logger:    log,
		Session:   scoped,
		Client:    client,
		Auth:      service.NewAuthService(repository.NewAuthRepository(client), session.DefaultTTL, log),
		Dashboard: service.NewDashboardService(societyRepo, noticeRepo, amenityRepo, complaintRepo, paymentRepo, log),
		Society:   service.NewSocietyService(societyRepo, log),
		Notice:    service.NewNoticeService(noticeRepo, log),
		Amenity:   service.NewAmenityService(amenityRepo, log),
		Complaint: service.NewComplaintService(complaintRepo, log),
		Payment:   service.NewPaymentService(paymentRepo, log),
		User:      service.NewUserService(repository.NewUserRepository(client), log),
	}, nil
}

// Print writes v as indented JSON
func (a *App) Print(v interface{}) error {
	enc := json.NewEncoder(a.Out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
