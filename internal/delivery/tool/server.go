package tool

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/sirupsen/logrus"
)

// Server reads line-delimited tool calls from a reader and writes one JSON
// result per call, for the agent runtime to drive over stdio. Each line in is
// {"tool": name, "args": {...}}; each line out is the tool's result value.
type Server struct {
	registry *Registry
	log      *logrus.Logger
}

type callRequest struct {
	Tool string          `json:"tool"`
	Args json.RawMessage `json:"args"`
}

func NewServer(registry *Registry, log *logrus.Logger) *Server {
	return &Server{
		registry: registry,
		log:      log,
	}
}

// Serve runs until in is exhausted or ctx is cancelled. Cancellation is
// observed between lines; a caller that wants to interrupt a blocked read
// must close in, which surfaces here as the read error.
func (s *Server) Serve(ctx context.Context, in io.Reader, out io.Writer) error {
	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	encoder := json.NewEncoder(out)

	for scanner.Scan() {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		line := bytes.TrimSpace(scanner.Bytes())
		if len(line) == 0 {
			continue
		}

		var call callRequest
		if err := json.Unmarshal(line, &call); err != nil {
			s.log.Warnf("Malformed tool call: %+v", err)
			if err := encoder.Encode(fmt.Sprintf("Error: Malformed tool call: %v", err)); err != nil {
				return err
			}
			continue
		}

		result := s.registry.Dispatch(ctx, call.Tool, call.Args)
		if err := encoder.Encode(result); err != nil {
			return err
		}
	}

	return scanner.Err()
}
