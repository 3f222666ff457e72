// Package paystack contém um cliente mínimo para a API de transações da
// Paystack. Só cobrimos os dois endpoints que o fluxo de upgrade usa:
// initialize e verify.
package paystack

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// Client fala com a API da Paystack. BaseURL e HTTPClient são injetáveis
// para que os testes apontem para um httptest.Server.
type Client struct {
	baseURL    string
	secretKey  string
	httpClient *http.Client
}

// NewClient cria o cliente com a chave secreta da conta.
func NewClient(baseURL, secretKey string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 15 * time.Second}
	}
	return &Client{baseURL: baseURL, secretKey: secretKey, httpClient: httpClient}
}

// InitializeRequest é o corpo enviado para /transaction/initialize.
type InitializeRequest struct {
	Email       string            `json:"email"`
	Amount      int64             `json:"amount"`
	Currency    string            `json:"currency"`
	CallbackURL string            `json:"callback_url"`
	Metadata    map[string]string `json:"metadata"`
}

// InitializeResponse traz a URL de pagamento hospedada e a referência
// da transação.
type InitializeResponse struct {
	AuthorizationURL string
	Reference        string
}

type paystackEnvelope struct {
	Status  bool            `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

// Initialize abre uma transação na Paystack e devolve a URL de checkout.
func (c *Client) Initialize(ctx context.Context, req InitializeRequest) (*InitializeResponse, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return nil, err
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.baseURL+"/transaction/initialize", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	httpReq.Header.Set("Authorization", "Bearer "+c.secretKey)
	httpReq.Header.Set("Content-Type", "application/json")

	var envelope paystackEnvelope
	if err := c.do(httpReq, &envelope); err != nil {
		return nil, err
	}
	if !envelope.Status {
		return nil, fmt.Errorf("paystack: inicialização recusada: %s", envelope.Message)
	}

	var data struct {
		AuthorizationURL string `json:"authorization_url"`
		Reference        string `json:"reference"`
	}
	if err := json.Unmarshal(envelope.Data, &data); err != nil {
		return nil, err
	}
	return &InitializeResponse{AuthorizationURL: data.AuthorizationURL, Reference: data.Reference}, nil
}

// VerifyResponse é o resultado da verificação síncrona de uma transação.
type VerifyResponse struct {
	// Status da transação na Paystack ("success", "failed", ...).
	Status    string
	Reference string
	// user_id gravado no metadata quando a transação foi inicializada.
	UsuarioID string
}

// Verify consulta /transaction/verify/{reference} e devolve o estado da
// transação. Usado pelo callback de redirect antes de conceder o plano.
func (c *Client) Verify(ctx context.Context, reference string) (*VerifyResponse, error) {
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet,
		c.baseURL+"/transaction/verify/"+reference, nil)
	if err != nil {
		return nil, err
	}
	httpReq.Header.Set("Authorization", "Bearer "+c.secretKey)

	var envelope paystackEnvelope
	if err := c.do(httpReq, &envelope); err != nil {
		return nil, err
	}
	if !envelope.Status {
		return nil, fmt.Errorf("paystack: verificação recusada: %s", envelope.Message)
	}

	var data struct {
		Status    string `json:"status"`
		Reference string `json:"reference"`
		Metadata  struct {
			UserID string `json:"user_id"`
		} `json:"metadata"`
	}
	if err := json.Unmarshal(envelope.Data, &data); err != nil {
		return nil, err
	}
	return &VerifyResponse{
		Status:    data.Status,
		Reference: data.Reference,
		UsuarioID: data.Metadata.UserID,
	}, nil
}

func (c *Client) do(req *http.Request, out *paystackEnvelope) error {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("paystack: resposta inválida: %w", err)
	}
	return nil
}
