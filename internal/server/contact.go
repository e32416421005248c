package server

import (
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/matthieukhl/giftlab/internal/models"
)

// submitContact stores an inquiry and relays it to the shop inbox. The
// message is persisted before any delivery attempt; a relay failure is
// reported back only as a soft flag.
func (s *Server) submitContact(c *gin.Context) {
	name := c.PostForm("name")
	email := c.PostForm("email")
	phone := c.PostForm("phone")
	message := c.PostForm("message")
	if name == "" || email == "" || phone == "" || message == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "name, email, phone and message are required"})
		return
	}

	var attachment string
	if file, err := c.FormFile("attachment"); err == nil {
		url, err := s.saveUpload(file)
		if err != nil {
			respondStoreError(c, err)
			return
		}
		attachment = url
	}

	msg := models.ContactMessage{
		Name:       name,
		Email:      email,
		Phone:      phone,
		Message:    message,
		Attachment: attachment,
	}
	if err := s.contact.CreateMessage(&msg); err != nil {
		respondStoreError(c, err)
		return
	}

	body := fmt.Sprintf("New contact form message\n\nName: %s\nEmail: %s\nPhone: %s\n\n%s\n",
		name, email, phone, message)
	if attachment != "" {
		body += "\nAttachment: " + attachment + "\n"
	}

	if err := s.mailer.Send("New message from "+name, body); err != nil {
		// The message is already stored; delivery failure must not fail
		// the request.
		log.Printf("contact relay failed: %v", err)
		c.JSON(http.StatusOK, gin.H{"id": msg.ID, "email_error": true})
		return
	}

	c.JSON(http.StatusOK, gin.H{"id": msg.ID})
}

func (s *Server) listContactMessages(c *gin.Context) {
	messages, err := s.contact.ListMessages()
	if err != nil {
		respondStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, messages)
}
