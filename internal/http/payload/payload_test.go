package payload_test

import (
	"net/http/httptest"
	"net/url"
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/FlamesIsCool/tagz-bio/internal/http/payload"
)

var _ = Describe("Payload", func() {
	Describe("Decoder", func() {
		var decoder payload.Decoder

		It("should decode and validate a signup payload", func() {
			body := strings.NewReader(`{"username":"alice","email":"alice@example.com","password":"testpass"}`)
			req := httptest.NewRequest("POST", "/api/signup", body)

			var signup payload.SignupRequest
			err := decoder.DecodeJSONPayload(req, &signup)
			Expect(err).NotTo(HaveOccurred())
			Expect(signup.Username).To(Equal("alice"))
			Expect(signup.Email).To(Equal("alice@example.com"))
		})

		It("should reject unknown fields", func() {
			body := strings.NewReader(`{"username":"alice","email":"alice@example.com","password":"testpass","admin":true}`)
			req := httptest.NewRequest("POST", "/api/signup", body)

			var signup payload.SignupRequest
			err := decoder.DecodeJSONPayload(req, &signup)
			Expect(err).To(MatchError(ContainSubstring("unknown field")))
		})

		It("should surface validation failures", func() {
			body := strings.NewReader(`{"username":"al","email":"not-an-email","password":"short"}`)
			req := httptest.NewRequest("POST", "/api/signup", body)

			var signup payload.SignupRequest
			err := decoder.DecodeJSONPayload(req, &signup)
			Expect(err).To(MatchError(ContainSubstring("validating payload")))
		})
	})

	Describe("SignupRequest", func() {
		var req payload.SignupRequest

		BeforeEach(func() {
			req = payload.SignupRequest{
				Username: "alice",
				Email:    "alice@example.com",
				Password: "testpass",
			}
		})

		It("should accept a well formed request", func() {
			Expect(req.Validate()).To(Succeed())
		})

		It("should reject a short username", func() {
			req.Username = "al"
			Expect(req.Validate()).NotTo(Succeed())
		})

		It("should reject a malformed email", func() {
			req.Email = "not-an-email"
			Expect(req.Validate()).NotTo(Succeed())
		})

		It("should reject a short password", func() {
			req.Password = "short"
			Expect(req.Validate()).NotTo(Succeed())
		})
	})

	Describe("LoginRequestFromForm", func() {
		It("should read the username and password form fields", func() {
			form := url.Values{}
			form.Set("username", "alice@example.com")
			form.Set("password", "testpass")
			httpReq := httptest.NewRequest("POST", "/api/login", strings.NewReader(form.Encode()))
			httpReq.Header.Set("Content-Type", "application/x-www-form-urlencoded")

			req, err := payload.LoginRequestFromForm(httpReq)
			Expect(err).NotTo(HaveOccurred())
			Expect(req.Validate()).To(Succeed())

			msg := req.ToMessage()
			Expect(msg.Identifier).To(Equal("alice@example.com"))
			Expect(msg.Password).To(Equal("testpass"))
		})

		It("should fail validation when fields are missing", func() {
			httpReq := httptest.NewRequest("POST", "/api/login", strings.NewReader("username=alice"))
			httpReq.Header.Set("Content-Type", "application/x-www-form-urlencoded")

			req, err := payload.LoginRequestFromForm(httpReq)
			Expect(err).NotTo(HaveOccurred())
			Expect(req.Validate()).NotTo(Succeed())
		})
	})

	Describe("UpdateProfileRequest", func() {
		It("should accept a partial update", func() {
			bio := "hello"
			req := payload.UpdateProfileRequest{Bio: &bio}
			Expect(req.Validate()).To(Succeed())

			msg := req.ToMessage()
			Expect(*msg.Bio).To(Equal("hello"))
			Expect(msg.ThemeHex).To(BeNil())
			Expect(msg.Links).To(BeNil())
		})

		It("should keep an explicit empty link list distinct from absence", func() {
			req := payload.UpdateProfileRequest{Links: []payload.LinkPayload{}}
			Expect(req.Validate()).To(Succeed())

			msg := req.ToMessage()
			Expect(msg.Links).NotTo(BeNil())
			Expect(msg.Links).To(BeEmpty())
		})

		It("should validate each link element", func() {
			req := payload.UpdateProfileRequest{
				Links: []payload.LinkPayload{
					{Title: "", URL: "https://blog.example"},
				},
			}
			Expect(req.Validate()).NotTo(Succeed())
		})

		It("should reject an overlong theme", func() {
			theme := "#00ff88aabbccddeeff"
			req := payload.UpdateProfileRequest{ThemeHex: &theme}
			Expect(req.Validate()).NotTo(Succeed())
		})

		It("should carry link fields through to the message", func() {
			icon := "🔥"
			req := payload.UpdateProfileRequest{
				Links: []payload.LinkPayload{
					{Title: "Blog", URL: "https://blog.example", Icon: &icon, OrderIndex: 2},
				},
			}
			Expect(req.Validate()).To(Succeed())

			msg := req.ToMessage()
			Expect(msg.Links).To(HaveLen(1))
			Expect(msg.Links[0].Title).To(Equal("Blog"))
			Expect(msg.Links[0].URL).To(Equal("https://blog.example"))
			Expect(*msg.Links[0].Icon).To(Equal("🔥"))
			Expect(msg.Links[0].OrderIndex).To(Equal(2))
		})
	})
})
