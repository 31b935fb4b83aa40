// Package forecast provides a Go client library for the Pirate Weather API,
// a drop-in replacement for the retired Dark Sky API.
//
// APIClient is the main entrypoint. It sends finalized requests through an
// injected HTTP transport and returns the transport's response untouched:
//
//   - GetForecast issues a current-forecast request.
//   - GetTimeMachine issues a point-in-time request for historical or future
//     weather data.
//
// Requests are assembled with ForecastRequestBuilder and
// TimeMachineRequestBuilder, which compute the request URL once, at build
// time.
//
// Basic Usage:
//
//	client := forecast.NewAPIClient(&http.Client{Timeout: 30 * time.Second})
//
//	blocks := []forecast.ExcludeBlock{forecast.ExcludeDaily, forecast.ExcludeAlerts}
//
//	request := forecast.NewForecastRequestBuilder("my_api_key", 59.9139, 10.7522).
//		ExcludeBlock(forecast.ExcludeHourly).
//		ExcludeBlocks(&blocks).
//		Extend(forecast.ExtendHourly).
//		Lang(forecast.LangEnglish).
//		Units(forecast.UnitsSI).
//		Build()
//
//	resp, err := client.GetForecast(context.Background(), request)
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer resp.Body.Close()
//
//	payload, err := forecast.DecodeResponse(resp.Body)
//	if err != nil {
//		log.Fatal(err)
//	}
//	if payload.Currently != nil && payload.Currently.Temperature != nil {
//		fmt.Printf("Temperature: %.1f\n", *payload.Currently.Temperature)
//	}
//
// The enums used for request parameters carry their wire tokens in explicit
// lookup tables; see ParseLang for the one irregularity, the legacy "no"
// alias of Norwegian Bokmål.
package forecast
