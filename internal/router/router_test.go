package router_test

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"dogs-api/internal/domain/dogs"
	"dogs-api/internal/platform/httpclient"
	"dogs-api/internal/router"
)

func newClient(t *testing.T, opts router.Options) *httpclient.Client {
	t.Helper()

	ts := httptest.NewServer(router.NewRouter(opts))
	t.Cleanup(ts.Close)

	c, err := httpclient.NewWithBaseURL(ts.URL, 5*time.Second)
	if err != nil {
		t.Fatalf("client: %v", err)
	}
	return c
}

func TestHTTP_EndToEnd_DogLifecycle(t *testing.T) {
	c := newClient(t, router.Options{})

	// 1) Hello
	{
		res := doReq(t, c, "GET", "/", nil)
		if res.StatusCode != http.StatusOK {
			t.Fatalf("expected 200 hello, got %d", res.StatusCode)
		}
		var body struct {
			Message string `json:"message"`
		}
		_ = res.DecodeJSON(&body)
		if body.Message != "Hello World!" {
			t.Fatalf("unexpected hello body=%s", string(res.Body))
		}
	}

	// 2) Lista vacía es [] (no null)
	{
		res := doReq(t, c, "GET", "/dogs", nil)
		if res.StatusCode != http.StatusOK || strings.TrimSpace(string(res.Body)) != "[]" {
			t.Fatalf("expected 200 [], got %d body=%s", res.StatusCode, string(res.Body))
		}
	}

	// 3) Crear
	created := createDog(t, c, map[string]any{
		"name":        "Rex",
		"breed":       "Lab",
		"age":         3,
		"description": "friendly",
	})
	want := dogs.Dog{ID: created.ID, Name: "Rex", Breed: "Lab", Age: 3, Description: "friendly"}
	if created != want {
		t.Fatalf("expected created %+v, got %+v", want, created)
	}

	// 4) Round-trip: GET devuelve el mismo registro
	{
		res := doReq(t, c, "GET", dogPath(created.ID), nil)
		if res.StatusCode != http.StatusOK {
			t.Fatalf("expected 200 get dog, got %d body=%s", res.StatusCode, string(res.Body))
		}
		var got dogs.Dog
		if err := res.DecodeJSON(&got); err != nil {
			t.Fatalf("decode: %v", err)
		}
		if got != created {
			t.Fatalf("round trip mismatch: created %+v got %+v", created, got)
		}
	}

	// 5) Listado incluye el registro
	{
		res := doReq(t, c, "GET", "/dogs", nil)
		var items []dogs.Dog
		if err := res.DecodeJSON(&items); err != nil {
			t.Fatalf("decode list: %v", err)
		}
		if len(items) != 1 || items[0] != created {
			t.Fatalf("unexpected list %+v", items)
		}
	}

	// 6) PATCH solo breed, el resto no cambia
	{
		res := doReq(t, c, "PATCH", dogPath(created.ID), map[string]any{"breed": "Beagle"})
		if res.StatusCode != http.StatusCreated {
			t.Fatalf("expected 201 patch, got %d body=%s", res.StatusCode, string(res.Body))
		}
		var got dogs.Dog
		if err := res.DecodeJSON(&got); err != nil {
			t.Fatalf("decode: %v", err)
		}
		want := created
		want.Breed = "Beagle"
		if got != want {
			t.Fatalf("expected %+v after patch, got %+v", want, got)
		}
	}

	// 7) DELETE devuelve el snapshot
	{
		res := doReq(t, c, "DELETE", dogPath(created.ID), nil)
		if res.StatusCode != http.StatusOK {
			t.Fatalf("expected 200 delete, got %d body=%s", res.StatusCode, string(res.Body))
		}
		var got dogs.Dog
		if err := res.DecodeJSON(&got); err != nil {
			t.Fatalf("decode: %v", err)
		}
		if got.ID != created.ID || got.Breed != "Beagle" {
			t.Fatalf("unexpected deleted snapshot %+v", got)
		}
	}

	// 8) Después de borrar, show y delete => 204
	for _, method := range []string{"GET", "DELETE"} {
		res := doReq(t, c, method, dogPath(created.ID), nil)
		if res.StatusCode != http.StatusNoContent {
			t.Fatalf("expected 204 %s after delete, got %d", method, res.StatusCode)
		}
	}
}

func TestHTTP_NonNumericID(t *testing.T) {
	c := newClient(t, router.Options{})

	for _, method := range []string{"GET", "DELETE", "PATCH"} {
		res := doReq(t, c, method, "/dogs/rex", nil)
		if res.StatusCode != http.StatusBadRequest {
			t.Fatalf("%s: expected 400, got %d", method, res.StatusCode)
		}
		if !strings.Contains(string(res.Body), "id should be a number") {
			t.Fatalf("%s: unexpected body=%s", method, string(res.Body))
		}
	}
}

func TestHTTP_Create_Validation(t *testing.T) {
	c := newClient(t, router.Options{})

	tests := []struct {
		name    string
		payload any
		want    string
	}{
		{
			name:    "age as string",
			payload: map[string]any{"name": "Rex", "breed": "Lab", "age": "three", "description": "friendly"},
			want:    "age should be a number",
		},
		{
			name:    "unknown key",
			payload: map[string]any{"name": "Rex", "breed": "Lab", "age": 3, "description": "x", "foo": "bar"},
			want:    "'foo' is not a valid key",
		},
		{
			name:    "name as number",
			payload: map[string]any{"name": 1, "breed": "Lab", "age": 3, "description": "x"},
			want:    "name should be a string",
		},
		{
			name:    "empty body",
			payload: "",
			want:    "description should be a string",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := doReq(t, c, "POST", "/dogs", tt.payload)
			if res.StatusCode != http.StatusBadRequest {
				t.Fatalf("expected 400, got %d body=%s", res.StatusCode, string(res.Body))
			}
			var body struct {
				Errors []string `json:"errors"`
			}
			if err := res.DecodeJSON(&body); err != nil {
				t.Fatalf("decode: %v", err)
			}
			found := false
			for _, e := range body.Errors {
				if e == tt.want {
					found = true
				}
			}
			if !found {
				t.Fatalf("expected %q in %v", tt.want, body.Errors)
			}
		})
	}

	// Ningún request inválido llegó al store
	res := doReq(t, c, "GET", "/dogs", nil)
	if strings.TrimSpace(string(res.Body)) != "[]" {
		t.Fatalf("invalid creates reached the store: %s", string(res.Body))
	}
}

func TestHTTP_Update_MissingDogIs201Null(t *testing.T) {
	c := newClient(t, router.Options{})

	res := doReq(t, c, "PATCH", dogPath(404), map[string]any{"name": "Ghost"})
	if res.StatusCode != http.StatusCreated {
		t.Fatalf("expected 201, got %d", res.StatusCode)
	}
	if !res.IsNull() {
		t.Fatalf("expected null body, got %s", string(res.Body))
	}
}

func TestHTTP_StrictMode(t *testing.T) {
	c := newClient(t, router.Options{StrictHTTP: true})

	res := doReq(t, c, "GET", dogPath(1), nil)
	if res.StatusCode != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", res.StatusCode)
	}
	if res.Err() == nil {
		t.Fatalf("expected HTTPError for 404")
	}

	d := createDog(t, c, map[string]any{"name": "Rex", "breed": "Lab", "age": 3, "description": "friendly"})
	res = doReq(t, c, "PATCH", dogPath(d.ID), map[string]any{"age": 4})
	if res.StatusCode != http.StatusOK {
		t.Fatalf("expected 200 patch in strict mode, got %d", res.StatusCode)
	}
}

func TestHTTP_RequestIDAndDocs(t *testing.T) {
	c := newClient(t, router.Options{})

	res, err := c.DoJSON(context.Background(), "GET", "/health", map[string]string{"X-Request-ID": "req-123"}, nil)
	if err != nil {
		t.Fatalf("health: %v", err)
	}
	if res.StatusCode != http.StatusOK || string(res.Body) != "ok" {
		t.Fatalf("unexpected health %d %s", res.StatusCode, string(res.Body))
	}
	if got := res.Header.Get("X-Request-ID"); got != "req-123" {
		t.Fatalf("expected request id echoed, got %q", got)
	}

	res = doReq(t, c, "GET", "/", nil)
	if res.Header.Get("X-Request-ID") == "" {
		t.Fatalf("expected generated request id")
	}

	res = doReq(t, c, "GET", "/swagger/doc.json", nil)
	if res.StatusCode != http.StatusOK || !strings.Contains(string(res.Body), "/dogs/{id}") {
		t.Fatalf("expected swagger doc, got %d", res.StatusCode)
	}
}

func createDog(t *testing.T, c *httpclient.Client, payload map[string]any) dogs.Dog {
	t.Helper()

	res := doReq(t, c, "POST", "/dogs", payload)
	if res.StatusCode != http.StatusCreated {
		t.Fatalf("expected 201 create dog, got %d body=%s", res.StatusCode, string(res.Body))
	}

	var d dogs.Dog
	_ = res.DecodeJSON(&d)
	if d.ID == 0 {
		t.Fatalf("create dog: missing id body=%s", string(res.Body))
	}
	return d
}

func dogPath(id int64) string {
	return fmt.Sprintf("/dogs/%d", id)
}

func doReq(t *testing.T, c *httpclient.Client, method, path string, body any) *httpclient.Response {
	t.Helper()

	res, err := c.DoJSON(context.Background(), method, path, nil, body)
	if err != nil {
		t.Fatalf("%s %s: %v", method, path, err)
	}
	return res
}
