// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package mcp

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"reflect"
	"strings"
	"time"

	"github.com/bureau-foundation/designdoc/cmd/designdoc/cli"
	"github.com/bureau-foundation/designdoc/lib/componentdoc"
	"github.com/bureau-foundation/designdoc/lib/github"
	"github.com/bureau-foundation/designdoc/lib/version"
)

// serverName is reported in serverInfo during initialization.
const serverName = "designdoc"

// instructions is sent to clients during initialization.
const instructions = `Design system component documentation. Use designdoc_component_list to find component names, designdoc_component_show for a component's full documentation, and designdoc_component_props for its prop schema. Component names are case-sensitive.`

// Server is an MCP server that exposes designdoc CLI commands as tools,
// and optionally component documentation as resources, over JSON-RPC
// 2.0 on newline-delimited stdio.
type Server struct {
	tools       []tool
	toolsByName map[string]*tool
	providers   []ResourceProvider
	allowed     map[string]bool
	logger      *slog.Logger
	initialized bool
}

// ServerOption configures optional server behavior.
type ServerOption func(*Server)

// WithTools restricts the exposed tools to the named ones. Unknown
// names are ignored. Without this option every discovered tool is
// exposed.
func WithTools(names ...string) ServerOption {
	return func(s *Server) {
		if len(names) == 0 {
			return
		}
		s.allowed = make(map[string]bool, len(names))
		for _, name := range names {
			s.allowed[name] = true
		}
	}
}

// WithResourceProvider registers a resource provider. Providers are
// consulted in registration order.
func WithResourceProvider(provider ResourceProvider) ServerOption {
	return func(s *Server) {
		s.providers = append(s.providers, provider)
	}
}

// WithLogger sets the logger passed to tool runs and used for
// server diagnostics. The default discards everything.
func WithLogger(logger *slog.Logger) ServerOption {
	return func(s *Server) {
		s.logger = logger
	}
}

// tool is a discovered CLI command exposed as an MCP tool.
type tool struct {
	name         string
	title        string
	description  string
	annotations  *toolAnnotations
	inputSchema  *cli.Schema
	outputSchema *cli.Schema
	command      *cli.Command
}

// NewServer creates an MCP server by walking the command tree to
// discover all commands with a Params function. Each such command
// becomes an MCP tool with a JSON Schema derived from its parameter
// struct.
func NewServer(root *cli.Command, options ...ServerOption) *Server {
	s := &Server{logger: slog.New(slog.DiscardHandler)}
	for _, option := range options {
		option(s)
	}

	var discovered []tool
	discoverTools(root, nil, &discovered, s.logger)
	for _, t := range discovered {
		if s.allowed != nil && !s.allowed[t.name] {
			continue
		}
		s.tools = append(s.tools, t)
	}

	s.toolsByName = make(map[string]*tool, len(s.tools))
	for i := range s.tools {
		s.toolsByName[s.tools[i].name] = &s.tools[i]
	}

	return s
}

// Serve runs the server on os.Stdin and os.Stdout. This is the entry
// point for "designdoc mcp serve".
func (s *Server) Serve(ctx context.Context) error {
	return s.Run(ctx, os.Stdin, os.Stdout)
}

// Run processes JSON-RPC 2.0 requests from input and writes responses
// to output until input reaches EOF or ctx is done. Each request
// occupies a single line (newline-delimited JSON-RPC, not
// Content-Length framed). Requests are handled one at a time.
func (s *Server) Run(ctx context.Context, input io.Reader, output io.Writer) error {
	scanner := bufio.NewScanner(input)
	// Tool results with whole documents can be large.
	scanner.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)

	encoder := json.NewEncoder(output)

	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return err
		}

		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}

		var req request
		if err := json.Unmarshal(line, &req); err != nil {
			if writeErr := writeError(encoder, json.RawMessage("null"), codeParseError, "parse error: "+err.Error()); writeErr != nil {
				return cli.Internal("writing parse error response: %w", writeErr)
			}
			continue
		}

		if req.JSONRPC != "2.0" {
			if !req.isNotification() {
				if writeErr := writeError(encoder, req.ID, codeInvalidRequest, "unsupported JSON-RPC version"); writeErr != nil {
					return cli.Internal("writing version error response: %w", writeErr)
				}
			}
			continue
		}

		// Notifications have no ID and receive no response.
		if req.isNotification() {
			continue
		}

		if err := s.dispatch(ctx, encoder, &req); err != nil {
			return err
		}
	}

	return scanner.Err()
}

// dispatch routes a JSON-RPC request to the appropriate handler.
func (s *Server) dispatch(ctx context.Context, encoder *json.Encoder, req *request) error {
	switch req.Method {
	case "initialize":
		return s.handleInitialize(encoder, req)
	case "ping":
		return writeResult(encoder, req.ID, map[string]any{})
	}

	if !s.initialized {
		return writeError(encoder, req.ID, codeInvalidRequest, "server not initialized (call initialize first)")
	}

	switch req.Method {
	case "tools/list":
		return s.handleToolsList(encoder, req)
	case "tools/call":
		return s.handleToolsCall(ctx, encoder, req)
	case "resources/list":
		return s.handleResourcesList(ctx, encoder, req)
	case "resources/templates/list":
		return s.handleResourceTemplatesList(ctx, encoder, req)
	case "resources/read":
		return s.handleResourcesRead(ctx, encoder, req)
	default:
		return writeError(encoder, req.ID, codeMethodNotFound, "unknown method: "+req.Method)
	}
}

func (s *Server) handleInitialize(encoder *json.Encoder, req *request) error {
	if len(req.Params) == 0 {
		return writeError(encoder, req.ID, codeInvalidParams, "params required for initialize")
	}

	var params initializeParams
	if err := json.Unmarshal(req.Params, &params); err != nil {
		return writeError(encoder, req.ID, codeInvalidParams, "invalid initialize params: "+err.Error())
	}

	// The server answers with its own protocol version and the client
	// decides whether it can proceed.
	s.initialized = true
	s.logger.Debug("mcp client initialized",
		"client", params.ClientInfo.Name,
		"client_version", params.ClientInfo.Version,
		"protocol_version", params.ProtocolVersion,
	)

	capabilities := serverCapabilities{Tools: &toolCapability{}}
	if len(s.providers) > 0 {
		capabilities.Resources = &resourceCapability{}
	}
	return writeResult(encoder, req.ID, initializeResult{
		ProtocolVersion: protocolVersion,
		Capabilities:    capabilities,
		ServerInfo: serverInfo{
			Name:    serverName,
			Version: version.Version,
		},
		Instructions: instructions,
	})
}

func (s *Server) handleToolsList(encoder *json.Encoder, req *request) error {
	descriptions := make([]toolDescription, 0, len(s.tools))
	for _, t := range s.tools {
		description := toolDescription{
			Name:        t.name,
			Title:       t.title,
			Description: t.description,
			InputSchema: t.inputSchema,
			Annotations: t.annotations,
		}
		// A nil *cli.Schema in the interface would encode as null.
		if t.outputSchema != nil {
			description.OutputSchema = t.outputSchema
		}
		descriptions = append(descriptions, description)
	}
	return writeResult(encoder, req.ID, toolsListResult{Tools: descriptions})
}

func (s *Server) handleToolsCall(ctx context.Context, encoder *json.Encoder, req *request) error {
	if len(req.Params) == 0 {
		return writeError(encoder, req.ID, codeInvalidParams, "params required for tools/call")
	}

	var params toolsCallParams
	if err := json.Unmarshal(req.Params, &params); err != nil {
		return writeError(encoder, req.ID, codeInvalidParams, "invalid tools/call params: "+err.Error())
	}

	t, ok := s.toolsByName[params.Name]
	if !ok {
		return writeError(encoder, req.ID, codeInvalidParams, "unknown tool: "+params.Name)
	}

	start := time.Now()
	output, runErr := s.executeTool(ctx, t, params.Arguments)
	result := buildToolResult(output, runErr)

	// Tools with an output schema return both structuredContent and
	// the serialized JSON as a text block.
	if t.outputSchema != nil && !result.IsError && output != "" {
		var structured any
		if parseErr := json.Unmarshal([]byte(output), &structured); parseErr != nil {
			result.IsError = true
			result.Content = append(result.Content, contentBlock{
				Type: "text",
				Text: fmt.Sprintf("output schema violation: command produced non-JSON output: %v", parseErr),
			})
			result.ErrorInfo = &errorInfo{Category: string(cli.CategoryInternal)}
		} else {
			result.StructuredContent = structured
		}
	}

	attributes := []any{"tool", t.name, "duration", time.Since(start)}
	if runErr != nil {
		s.logger.Info("mcp tool call failed", append(attributes, "category", result.ErrorInfo.Category, "error", runErr)...)
	} else {
		s.logger.Debug("mcp tool call", attributes...)
	}

	return writeResult(encoder, req.ID, result)
}

// buildToolResult assembles a toolsCallResult from captured output
// and an optional run error.
func buildToolResult(output string, runErr error) toolsCallResult {
	result := toolsCallResult{}
	if output != "" {
		result.Content = append(result.Content, contentBlock{
			Type: "text",
			Text: output,
		})
	}
	if runErr != nil {
		result.IsError = true
		result.Content = append(result.Content, contentBlock{
			Type: "text",
			Text: runErr.Error(),
		})
		result.ErrorInfo = classifyError(runErr)
	}
	// MCP requires at least one content block in the result.
	if len(result.Content) == 0 {
		result.Content = []contentBlock{{Type: "text", Text: ""}}
	}
	return result
}

// classifyError extracts structured error metadata from an error.
// ToolErrors carry their category. Other errors are classified by
// the known documentation source failures.
func classifyError(err error) *errorInfo {
	var toolErr *cli.ToolError
	if errors.As(err, &toolErr) {
		return &errorInfo{
			Category:  string(toolErr.Category),
			Retryable: toolErr.Category == cli.CategoryTransient,
		}
	}

	switch {
	case errors.Is(err, componentdoc.ErrNotFound), github.IsNotFound(err):
		return &errorInfo{Category: string(cli.CategoryNotFound)}
	case github.IsRateLimited(err):
		return &errorInfo{Category: string(cli.CategoryTransient), Retryable: true}
	case github.IsUnauthorized(err):
		return &errorInfo{Category: string(cli.CategoryForbidden)}
	case errors.Is(err, context.DeadlineExceeded), errors.Is(err, context.Canceled):
		return &errorInfo{Category: string(cli.CategoryTransient), Retryable: true}
	default:
		return &errorInfo{Category: string(cli.CategoryInternal)}
	}
}

// executeTool runs a CLI command as an MCP tool, capturing stdout.
// Parameters are zeroed, defaults applied from flag tags, JSON
// arguments overlaid, and JSON output mode forced before execution.
func (s *Server) executeTool(ctx context.Context, t *tool, arguments json.RawMessage) (string, error) {
	// Zero the closure-captured params so a previous call's state
	// does not bleed through.
	params := t.command.Params()
	reflect.ValueOf(params).Elem().SetZero()

	// Building the flag set writes tag defaults into params.
	t.command.FlagSet()

	if len(arguments) > 0 && string(arguments) != "null" {
		if err := json.Unmarshal(arguments, params); err != nil {
			return "", cli.Validation("invalid arguments: %w", err)
		}
	}

	enableJSONOutput(params)

	return captureRun(func() error {
		return t.command.Run(ctx, nil, s.logger)
	})
}

// enableJSONOutput forces JSON output mode on params structs that
// embed [cli.JSONOutput].
func enableJSONOutput(params any) {
	if j, ok := params.(cli.JSONOutputter); ok {
		j.SetJSONOutput(true)
	}
}

// captureRun executes run while capturing its stdout. A goroutine
// reads from the pipe concurrently so output larger than the pipe
// buffer cannot deadlock the command.
func captureRun(run func() error) (string, error) {
	reader, writer, err := os.Pipe()
	if err != nil {
		return "", cli.Internal("creating output pipe: %w", err)
	}

	saved := os.Stdout
	os.Stdout = writer

	type capturedOutput struct {
		data []byte
		err  error
	}
	done := make(chan capturedOutput, 1)
	go func() {
		data, readErr := io.ReadAll(reader)
		done <- capturedOutput{data, readErr}
	}()

	runErr := run()

	// Restore stdout before closing the pipe so that later writes go
	// to the real output.
	os.Stdout = saved
	writer.Close()

	captured := <-done
	reader.Close()

	if captured.err != nil {
		return "", cli.Internal("reading captured output: %w", captured.err)
	}

	return string(captured.data), runErr
}

// discoverTools walks the command tree recursively, collecting
// commands that have both Params and Run as MCP tools.
func discoverTools(command *cli.Command, path []string, tools *[]tool, logger *slog.Logger) {
	// Fresh slice: recursive calls share the prefix.
	current := make([]string, len(path)+1)
	copy(current, path)
	current[len(path)] = command.Name

	if command.Params != nil && command.Run != nil {
		toolName := strings.Join(current, "_")

		inputSchema, err := cli.ParamsSchema(command.Params())
		if err != nil {
			logger.Warn("mcp: skipping tool with invalid input schema", "tool", toolName, "error", err)
		} else {
			var outputSchema *cli.Schema
			if command.Output != nil {
				outSchema, outErr := cli.OutputSchema(command.Output())
				if outErr != nil {
					logger.Warn("mcp: tool output schema unavailable", "tool", toolName, "error", outErr)
				} else {
					outputSchema = outSchema
				}
			}

			*tools = append(*tools, tool{
				name:         toolName,
				title:        command.Summary,
				description:  toolDescriptionText(command),
				annotations:  resolveAnnotations(command),
				inputSchema:  inputSchema,
				outputSchema: outputSchema,
				command:      command,
			})
		}
	}

	for _, sub := range command.Subcommands {
		discoverTools(sub, current, tools, logger)
	}
}

// toolDescriptionText prefers the detailed Description over the
// Summary.
func toolDescriptionText(command *cli.Command) string {
	if command.Description != "" {
		return command.Description
	}
	return command.Summary
}

// resolveAnnotations translates a command's annotations into MCP
// hints. Returns nil for commands without annotations, letting
// clients apply the protocol defaults.
func resolveAnnotations(command *cli.Command) *toolAnnotations {
	if command.Annotations == nil {
		return nil
	}
	return &toolAnnotations{
		ReadOnlyHint:    command.Annotations.ReadOnly,
		DestructiveHint: command.Annotations.Destructive,
		IdempotentHint:  command.Annotations.Idempotent,
		OpenWorldHint:   command.Annotations.OpenWorld,
	}
}

// writeResult sends a JSON-RPC 2.0 success response.
func writeResult(encoder *json.Encoder, id json.RawMessage, result any) error {
	return encoder.Encode(response{
		JSONRPC: "2.0",
		ID:      id,
		Result:  result,
	})
}

// writeError sends a JSON-RPC 2.0 error response.
func writeError(encoder *json.Encoder, id json.RawMessage, code int, message string) error {
	return encoder.Encode(response{
		JSONRPC: "2.0",
		ID:      id,
		Error:   &rpcError{Code: code, Message: message},
	})
}
