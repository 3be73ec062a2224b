package server

import (
	"bytes"
	"encoding/json"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	fastws "github.com/fasthttp/websocket"
	"github.com/gofiber/fiber/v2"

	"github.com/lgbarn/chessrules-go/internal/engine"
	"github.com/lgbarn/chessrules-go/internal/output"
	"github.com/lgbarn/chessrules-go/internal/service"
	"github.com/lgbarn/chessrules-go/internal/storage"
	"github.com/lgbarn/chessrules-go/internal/testutil"
)

func newApp(t *testing.T) *fiber.App {
	t.Helper()
	games := service.NewManager(storage.NewMemoryStore(), engine.DefaultRules())
	return New(games, Options{})
}

// do sends a request and decodes the JSON response into out.
func do(t *testing.T, app *fiber.App, method, path, body string, out interface{}) int {
	t.Helper()
	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, r)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("%s %s: %v", method, path, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	testutil.AssertNoError(t, err)
	if out != nil && len(data) > 0 {
		if err := json.Unmarshal(data, out); err != nil {
			t.Fatalf("%s %s: bad JSON %q: %v", method, path, data, err)
		}
	}
	return resp.StatusCode
}

func createGame(t *testing.T, app *fiber.App) string {
	t.Helper()
	var snap output.Snapshot
	status := do(t, app, http.MethodPost, "/games", "", &snap)
	testutil.AssertEqual(t, status, fiber.StatusCreated)
	testutil.AssertTrue(t, snap.ID != "", "game id")
	return snap.ID
}

func TestServer_CreateAndGet(t *testing.T) {
	app := newApp(t)
	id := createGame(t, app)

	var snap output.Snapshot
	status := do(t, app, http.MethodGet, "/games/"+id, "", &snap)
	testutil.AssertEqual(t, status, fiber.StatusOK)
	testutil.AssertEqual(t, snap.ID, id)
	testutil.AssertEqual(t, snap.FEN, "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1")

	var list struct{ Games []string }
	status = do(t, app, http.MethodGet, "/games", "", &list)
	testutil.AssertEqual(t, status, fiber.StatusOK)
	testutil.AssertEqual(t, list.Games, []string{id})
}

func TestServer_CreateFromFEN(t *testing.T) {
	app := newApp(t)

	var snap output.Snapshot
	status := do(t, app, http.MethodPost, "/games", `{"fen":"6k1/8/8/8/8/8/8/R3K2R w KQ - 0 1"}`, &snap)
	testutil.AssertEqual(t, status, fiber.StatusCreated)
	testutil.AssertEqual(t, snap.Castling, output.Castling{White: true})

	var body map[string]string
	status = do(t, app, http.MethodPost, "/games", `{"fen":"xyz"}`, &body)
	testutil.AssertEqual(t, status, fiber.StatusBadRequest)
	testutil.AssertContains(t, body["error"], "invalid FEN")
}

func TestServer_Moves(t *testing.T) {
	app := newApp(t)
	id := createGame(t, app)
	path := "/games/" + id + "/moves"

	tests := []struct {
		name       string
		body       string
		wantStatus int
		wantResult string
		wantToMove string
	}{
		{"accepted", `{"move":"e4"}`, fiber.StatusOK, "", "black"},
		{"occupied", `{"move":"Nd7"}`, fiber.StatusUnprocessableEntity, "The destination square is occupied", "black"},
		{"unreadable", `{"move":"Zf3"}`, fiber.StatusUnprocessableEntity, "Invalid piece", "black"},
		{"accepted after rejection", `{"move":"e5"}`, fiber.StatusOK, "", "white"},
		{"no legal move", `{"move":"Nc4"}`, fiber.StatusUnprocessableEntity, "No piece can make that move", "white"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var snap output.Snapshot
			status := do(t, app, http.MethodPost, path, tt.body, &snap)
			testutil.AssertEqual(t, status, tt.wantStatus)
			if tt.wantResult == "" {
				testutil.AssertEqual(t, snap.Result, "")
			} else {
				testutil.AssertContains(t, snap.Result, tt.wantResult)
			}
			testutil.AssertEqual(t, snap.ToMove, tt.wantToMove)
			testutil.AssertEqual(t, snap.Accepted, tt.wantStatus == fiber.StatusOK)
		})
	}
}

func TestServer_NotFound(t *testing.T) {
	app := newApp(t)

	var body map[string]string
	testutil.AssertEqual(t, do(t, app, http.MethodGet, "/games/missing", "", &body), fiber.StatusNotFound)
	testutil.AssertContains(t, body["error"], "game not found")

	status := do(t, app, http.MethodPost, "/games/missing/moves", `{"move":"e4"}`, nil)
	testutil.AssertEqual(t, status, fiber.StatusNotFound)
}

func TestServer_BadBody(t *testing.T) {
	app := newApp(t)
	id := createGame(t, app)

	status := do(t, app, http.MethodPost, "/games/"+id+"/moves", `{"move":`, nil)
	testutil.AssertEqual(t, status, fiber.StatusBadRequest)
}

func TestServer_Delete(t *testing.T) {
	app := newApp(t)
	id := createGame(t, app)

	testutil.AssertEqual(t, do(t, app, http.MethodDelete, "/games/"+id, "", nil), fiber.StatusNoContent)
	testutil.AssertEqual(t, do(t, app, http.MethodGet, "/games/"+id, "", nil), fiber.StatusNotFound)
}

func TestServer_WebSocketRequiresUpgrade(t *testing.T) {
	app := newApp(t)
	id := createGame(t, app)

	status := do(t, app, http.MethodGet, "/ws/games/"+id, "", nil)
	testutil.AssertEqual(t, status, fiber.StatusUpgradeRequired)
}

func TestServer_RequestLog(t *testing.T) {
	var buf bytes.Buffer
	games := service.NewManager(storage.NewMemoryStore(), engine.DefaultRules())
	app := New(games, Options{RequestLog: &buf})

	do(t, app, http.MethodGet, "/games/missing", "", nil)
	testutil.AssertContains(t, buf.String(), "/games/missing")
	testutil.AssertContains(t, buf.String(), "404")
}

func TestServer_WebSocket(t *testing.T) {
	app := newApp(t)
	id := createGame(t, app)

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	testutil.AssertNoError(t, err)
	go func() { _ = app.Listener(ln) }()
	t.Cleanup(func() { _ = app.Shutdown() })

	conn, _, err := fastws.DefaultDialer.Dial("ws://"+ln.Addr().String()+"/ws/games/"+id, nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	defer conn.Close()

	var snap output.Snapshot
	testutil.AssertNoError(t, conn.ReadJSON(&snap))
	testutil.AssertEqual(t, snap.ToMove, "white")

	for _, step := range []struct {
		move     string
		accepted bool
		toMove   string
	}{
		{"e4", true, "black"},
		{"e4", false, "black"},
		{"d5", true, "white"},
		{"exd5", false, "white"},
	} {
		testutil.AssertNoError(t, conn.WriteMessage(fastws.TextMessage, []byte(step.move)))
		snap = output.Snapshot{}
		testutil.AssertNoError(t, conn.ReadJSON(&snap))
		testutil.AssertEqual(t, snap.Accepted, step.accepted, step.move)
		testutil.AssertEqual(t, snap.ToMove, step.toMove, step.move)
	}
	testutil.AssertEqual(t, len(snap.Moves), 2)
}

func TestServer_Targets(t *testing.T) {
	app := newApp(t)
	id := createGame(t, app)

	var body struct {
		Square  string
		Targets []string
	}
	status := do(t, app, http.MethodGet, "/games/"+id+"/targets/b1", "", &body)
	testutil.AssertEqual(t, status, fiber.StatusOK)
	testutil.AssertEqual(t, body.Square, "b1")
	testutil.AssertEqual(t, body.Targets, []string{"a3", "c3"})

	var errBody struct{ Error string }
	status = do(t, app, http.MethodGet, "/games/"+id+"/targets/k9", "", &errBody)
	testutil.AssertEqual(t, status, fiber.StatusBadRequest)
	testutil.AssertContains(t, errBody.Error, "invalid square")
}
