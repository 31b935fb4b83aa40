package main

import (
	"context"
	"net/http"
	"os"
	"time"

	"github.com/sigaloid/forecast-go"
	"github.com/sigaloid/forecast-go/config"
	"github.com/sigaloid/forecast-go/pkg/observe"
)

func main() {
	cnf, err := config.Load("config/config.yaml")
	if err != nil {
		os.Stderr.WriteString("cannot load config: " + err.Error() + "\n")
		os.Exit(1)
	}

	hook := observe.NewSentryHook(cnf.AppName, cnf.AppEnv, cnf.SentryDSN)
	l := observe.NewZapLogger(cnf.AppName, os.Stdout).WithSentry(hook)
	defer func() { _ = l.Stop() }()

	if cnf.APIKey == "" {
		l.Fatal("FORECAST_API_KEY is not set")
	}

	builder := forecast.NewForecastRequestBuilder(cnf.APIKey, cnf.Latitude, cnf.Longitude)

	if cnf.Lang != "" {
		lang, err := forecast.ParseLang(cnf.Lang)
		if err != nil {
			l.Fatal("invalid lang in config", map[string]any{"lang": cnf.Lang, "err": err.Error()})
		}
		builder.Lang(lang)
	}
	if cnf.Units != "" {
		units, err := forecast.ParseUnits(cnf.Units)
		if err != nil {
			l.Fatal("invalid units in config", map[string]any{"units": cnf.Units, "err": err.Error()})
		}
		builder.Units(units)
	}

	request := builder.Build()

	client := forecast.NewAPIClientWithLogger(
		&http.Client{Timeout: time.Duration(cnf.RequestTimeout) * time.Second},
		l,
	)

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cnf.RequestTimeout)*time.Second)
	defer cancel()

	resp, err := client.GetForecast(ctx, request)
	if err != nil {
		l.Error(err, map[string]any{"url": request.URL()})
		return
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		l.Warning("unexpected status", map[string]any{"status": resp.StatusCode})
		return
	}

	payload, err := forecast.DecodeResponse(resp.Body)
	if err != nil {
		l.Error(err)
		return
	}

	fields := map[string]any{
		"timezone": payload.Timezone,
		"lat":      payload.Latitude,
		"lon":      payload.Longitude,
	}
	if payload.Currently != nil {
		if payload.Currently.Temperature != nil {
			fields["temperature"] = *payload.Currently.Temperature
		}
		if payload.Currently.Summary != nil {
			fields["summary"] = *payload.Currently.Summary
		}
	}
	l.Info("current conditions", fields)
}
