// Package probe queries Minecraft Java Edition servers using the Server List Ping protocol.
package probe

import (
	"errors"
	"fmt"
	"math"
	"net"
	"strconv"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/sch8ill/mclib/server"
	"github.com/woozymasta/mcprobe/internal/models"
)

// DefaultPort is the standard Minecraft Java Edition port.
const DefaultPort = 25565

// Options holds status ping parameters.
type Options struct {
	// Timeout bounds the whole connection, including the handshake and the ping.
	Timeout time.Duration
}

// QueryFunc performs a single status ping against host:port.
type QueryFunc func(host string, port int, options Options) (*models.ServerStatus, error)

// QueryServer connects to a Minecraft server via TCP and requests its status.
// SRV records are not resolved, the target is exactly host:port.
func QueryServer(host string, port int, options Options) (*models.ServerStatus, error) {
	addr := net.JoinHostPort(host, strconv.Itoa(port))

	mcs, err := server.New(addr, server.WithTimeout(options.Timeout), server.WithoutSRV())
	if err != nil {
		return nil, err
	}

	res, err := mcs.StatusPing()
	if err != nil {
		return nil, err
	}

	return &models.ServerStatus{
		Description:   res.Description.String(),
		Version:       res.Version.Name,
		Protocol:      int(res.Version.Protocol),
		PlayersOnline: int(res.Players.Online),
		PlayersMax:    int(res.Players.Max),
		Latency:       float64(res.Latency),
	}, nil
}

// Query runs a single status ping through fn and folds every outcome into a Result.
// It never returns an error and never panics; a nil fn means QueryServer.
func Query(fn QueryFunc, host string, port int, options Options) (result Result) {
	if fn == nil {
		fn = QueryServer
	}

	logCtx := log.With().
		Str("host", host).
		Int("port", port).
		Dur("timeout", options.Timeout).
		Logger()

	defer func() {
		if r := recover(); r != nil {
			err := fmt.Errorf("status ping panicked: %v", r)
			logCtx.Debug().Err(err).Msg("Status ping failed")
			result = Failed(FailureProtocol, err)
		}
	}()

	logCtx.Debug().Msg("Sending status ping")

	status, err := fn(host, port, options)
	if err != nil {
		kind := Classify(err)
		logCtx.Debug().Err(err).Str("kind", kind.String()).Msg("Status ping failed")
		return Failed(kind, err)
	}
	if status == nil {
		return Failed(FailureProtocol, errors.New("empty status response"))
	}

	st := *status
	st.Latency = roundLatency(st.Latency)

	logCtx.Debug().
		Str("version", st.Version).
		Int("protocol", st.Protocol).
		Int("players", st.PlayersOnline).
		Int("max_players", st.PlayersMax).
		Float64("latency_ms", st.Latency).
		Msg("Status ping succeeded")

	return Succeeded(st)
}

// roundLatency rounds milliseconds to 2 decimal places.
func roundLatency(ms float64) float64 {
	if ms < 0 || math.IsNaN(ms) || math.IsInf(ms, 0) {
		return 0
	}

	return math.Round(ms*100) / 100
}
