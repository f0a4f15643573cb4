package httpapi

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

type registerRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

func (s *Server) register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid registration request."})
		return
	}

	view, err := s.users.Register(c.Request.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		s.respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, view)
}

func (s *Server) verifyEmail(c *gin.Context) {
	token := c.Query("token")
	if token == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Verification token is required."})
		return
	}

	if err := s.users.VerifyEmail(c.Request.Context(), token); err != nil {
		s.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Email verified successfully. You can now log in."})
}

type loginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (s *Server) login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Email and password are required."})
		return
	}

	view, token, err := s.users.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		s.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"token": token, "user": view})
}

type resendRequest struct {
	Email string `json:"email"`
}

func (s *Server) resendVerification(c *gin.Context) {
	var req resendRequest
	if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.Email) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Email is required."})
		return
	}

	if err := s.users.ResendVerification(c.Request.Context(), req.Email); err != nil {
		s.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Verification email sent."})
}

func (s *Server) profile(c *gin.Context) {
	view, err := s.users.GetProfile(c.Request.Context(), principalFrom(c))
	if err != nil {
		s.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

type createOrderRequest struct {
	PlanType string `json:"planType" binding:"required"`
}

func (s *Server) createOrder(c *gin.Context) {
	var req createOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Plan type is required."})
		return
	}

	payment, err := s.payments.CreateOrder(c.Request.Context(), principalFrom(c), req.PlanType)
	if err != nil {
		s.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"orderId":  payment.GatewayOrderID,
		"amount":   payment.Amount,
		"currency": payment.Currency,
		"receipt":  payment.Receipt,
	})
}

type verifyPaymentRequest struct {
	OrderID   string `json:"razorpay_order_id"`
	PaymentID string `json:"razorpay_payment_id"`
	Signature string `json:"razorpay_signature"`
}

func (s *Server) verifyPayment(c *gin.Context) {
	var req verifyPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.OrderID == "" || req.PaymentID == "" || req.Signature == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required payment parameters."})
		return
	}

	ok, err := s.payments.VerifyPayment(c.Request.Context(), req.OrderID, req.PaymentID, req.Signature)
	if err != nil {
		s.respondError(c, err)
		return
	}
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"status": "failed", "message": "Payment verification failed."})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "success", "message": "Payment verified successfully."})
}

func (s *Server) paymentHistory(c *gin.Context) {
	result, err := s.payments.GetUserPayments(c.Request.Context(), principalFrom(c))
	if err != nil {
		s.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

func (s *Server) paymentDetails(c *gin.Context) {
	payment, err := s.payments.GetPaymentDetails(c.Request.Context(), principalFrom(c), c.Param("orderId"))
	if err != nil {
		s.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, payment)
}
