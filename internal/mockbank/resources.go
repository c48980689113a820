package mockbank

import (
	"net/http"
	"sort"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/sistema-bancario/backend/internal/model"
)

const notFoundDetail = "Not found."

var errNotFound = errors.New("not found")

// invalidError의 메시지는 그대로 detail로 나간다.
type invalidError string

func (e invalidError) Error() string { return string(e) }

// SeedClient - 테스트/개발용 고객 등록
func (s *Server) SeedClient(cl model.Client) (model.Client, error) {
	return s.saveClient(0, cl)
}

// SeedAccount - 테스트/개발용 계좌 등록
func (s *Server) SeedAccount(acc model.Account) (model.Account, error) {
	return s.saveAccount(0, acc)
}

// Account returns the stored account, for assertions.
func (s *Server) Account(id int64) (model.Account, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	acc, ok := s.accounts[id]
	return acc, ok
}

func (s *Server) listClients(c *gin.Context) {
	s.mu.RLock()
	out := make([]model.Client, 0, len(s.clients))
	for _, cl := range s.clients {
		out = append(out, cl)
	}
	s.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	c.JSON(http.StatusOK, out)
}

func (s *Server) getClient(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	s.mu.RLock()
	cl, found := s.clients[id]
	s.mu.RUnlock()
	if !found {
		detail(c, http.StatusNotFound, notFoundDetail)
		return
	}
	c.JSON(http.StatusOK, cl)
}

func (s *Server) createClient(c *gin.Context) {
	var cl model.Client
	if err := c.ShouldBindJSON(&cl); err != nil {
		detail(c, http.StatusBadRequest, "invalid JSON body.")
		return
	}
	saved, err := s.saveClient(0, cl)
	if err != nil {
		writeResourceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, saved)
}

func (s *Server) updateClient(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var cl model.Client
	if err := c.ShouldBindJSON(&cl); err != nil {
		detail(c, http.StatusBadRequest, "invalid JSON body.")
		return
	}
	saved, err := s.saveClient(id, cl)
	if err != nil {
		writeResourceError(c, err)
		return
	}
	c.JSON(http.StatusOK, saved)
}

func (s *Server) deleteClient(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	s.mu.Lock()
	_, found := s.clients[id]
	delete(s.clients, id)
	s.mu.Unlock()
	if !found {
		detail(c, http.StatusNotFound, notFoundDetail)
		return
	}
	c.Status(http.StatusNoContent)
}

func (s *Server) listAccounts(c *gin.Context) {
	s.mu.RLock()
	out := make([]model.Account, 0, len(s.accounts))
	for _, acc := range s.accounts {
		out = append(out, acc)
	}
	s.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	c.JSON(http.StatusOK, out)
}

func (s *Server) getAccount(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	acc, found := s.Account(id)
	if !found {
		detail(c, http.StatusNotFound, notFoundDetail)
		return
	}
	c.JSON(http.StatusOK, acc)
}

func (s *Server) createAccount(c *gin.Context) {
	var acc model.Account
	if err := c.ShouldBindJSON(&acc); err != nil {
		detail(c, http.StatusBadRequest, "invalid JSON body.")
		return
	}
	saved, err := s.saveAccount(0, acc)
	if err != nil {
		writeResourceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, saved)
}

func (s *Server) updateAccount(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var acc model.Account
	if err := c.ShouldBindJSON(&acc); err != nil {
		detail(c, http.StatusBadRequest, "invalid JSON body.")
		return
	}
	saved, err := s.saveAccount(id, acc)
	if err != nil {
		writeResourceError(c, err)
		return
	}
	c.JSON(http.StatusOK, saved)
}

func (s *Server) deleteAccount(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	s.mu.Lock()
	_, found := s.accounts[id]
	delete(s.accounts, id)
	s.mu.Unlock()
	if !found {
		detail(c, http.StatusNotFound, notFoundDetail)
		return
	}
	c.Status(http.StatusNoContent)
}

// saveClient는 id가 0이면 새로 만들고, 아니면 기존 항목을 통째로 바꾼다.
func (s *Server) saveClient(id int64, cl model.Client) (model.Client, error) {
	if strings.TrimSpace(cl.Name) == "" || strings.TrimSpace(cl.TaxID) == "" || strings.TrimSpace(cl.Email) == "" {
		return model.Client{}, invalidError("nome, cpf and email are required.")
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if id == 0 {
		s.nextClientID++
		id = s.nextClientID
	} else if _, ok := s.clients[id]; !ok {
		return model.Client{}, errNotFound
	}
	cl.ID = id
	s.clients[id] = cl
	return cl, nil
}

func (s *Server) saveAccount(id int64, acc model.Account) (model.Account, error) {
	if strings.TrimSpace(acc.Number) == "" || strings.TrimSpace(acc.Branch) == "" {
		return model.Account{}, invalidError("numero and agencia are required.")
	}
	balance, err := decimal.NewFromString(strings.TrimSpace(acc.Balance))
	if err != nil {
		return model.Account{}, invalidError("saldo must be a decimal number.")
	}
	if balance.IsNegative() {
		return model.Account{}, invalidError("saldo must not be negative.")
	}
	acc.Balance = balance.StringFixed(2)

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.clients[acc.ClientID]; !ok {
		return model.Account{}, invalidError("cliente does not exist.")
	}
	if id == 0 {
		s.nextAccountID++
		id = s.nextAccountID
	} else if _, ok := s.accounts[id]; !ok {
		return model.Account{}, errNotFound
	}
	acc.ID = id
	s.accounts[id] = acc
	return acc, nil
}

func pathID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		detail(c, http.StatusNotFound, notFoundDetail)
		return 0, false
	}
	return id, true
}

func writeResourceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, errNotFound):
		detail(c, http.StatusNotFound, notFoundDetail)
	case errors.As(err, new(invalidError)):
		detail(c, http.StatusBadRequest, err.Error())
	default:
		detail(c, http.StatusInternalServerError, "A server error occurred.")
	}
}
