package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/KeerthikaArumugam/clear-case-tracker/internal/auth"
	"github.com/KeerthikaArumugam/clear-case-tracker/internal/cache"
	"github.com/KeerthikaArumugam/clear-case-tracker/internal/config"
	"github.com/KeerthikaArumugam/clear-case-tracker/internal/kv"
	"github.com/KeerthikaArumugam/clear-case-tracker/internal/logger"
	"github.com/KeerthikaArumugam/clear-case-tracker/internal/model"
	"github.com/KeerthikaArumugam/clear-case-tracker/internal/repository"
	"github.com/KeerthikaArumugam/clear-case-tracker/internal/service"
)

// app holds the services a command works against.
type app struct {
	store      kv.Store
	cache      *cache.Client
	identity   service.IdentityService
	complaints service.ComplaintService
	reports    service.ReportService
	users      service.UserService
}

func openApp() (*app, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	// keep stdout clean for command output
	cfg.Logger.Output = "stderr"
	log, err := logger.New(cfg.Logger)
	if err != nil {
		return nil, err
	}
	store, err := kv.NewStore(log, cfg.Storage)
	if err != nil {
		return nil, err
	}
	return newApp(store, cache.NewFromConfig(cfg.Cache.Redis), cfg.Storage.Namespace, log), nil
}

func newApp(store kv.Store, c *cache.Client, namespace string, log *zap.Logger) *app {
	repos := repository.New(store, namespace, log)
	complaints := service.NewComplaintService(repos, c, nil, log, nil)
	return &app{
		store:      store,
		cache:      c,
		identity:   service.NewIdentityService(repos, auth.SHA256Hasher{}, nil, log, nil),
		complaints: complaints,
		reports:    service.NewReportService(complaints, c, repos.Keys, nil),
		users:      service.NewUserService(repos),
	}
}

func (a *app) Close() error {
	_ = a.cache.Close()
	return a.store.Close()
}

// guarded binds the complaint service to the user with id actorID.
func (a *app) guarded(ctx context.Context, actorID string) (*service.GuardedComplaints, error) {
	actor, err := a.users.GetUser(ctx, actorID)
	if err != nil {
		return nil, err
	}
	if actor == nil {
		return nil, fmt.Errorf("no user with id %q", actorID)
	}
	return service.Authorized(a.complaints, actor), nil
}

func publicUsers(users []model.User) []*model.PublicUser {
	out := make([]*model.PublicUser, 0, len(users))
	for i := range users {
		out = append(out, users[i].Public())
	}
	return out
}

// render writes v as indented JSON or as YAML carrying the JSON field names.
func render(w io.Writer, format string, v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal output: %w", err)
	}
	switch format {
	case "json":
		_, err = fmt.Fprintln(w, string(data))
		return err
	case "yaml":
		var generic interface{}
		if err := json.Unmarshal(data, &generic); err != nil {
			return err
		}
		out, err := yaml.Marshal(generic)
		if err != nil {
			return fmt.Errorf("failed to marshal output: %w", err)
		}
		_, err = w.Write(out)
		return err
	default:
		return fmt.Errorf("unsupported output format: %s", format)
	}
}
