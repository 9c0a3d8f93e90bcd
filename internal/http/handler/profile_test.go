package handler_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"

	"github.com/FlamesIsCool/tagz-bio/internal/core"
	"github.com/FlamesIsCool/tagz-bio/internal/http/handler"
	"github.com/FlamesIsCool/tagz-bio/internal/http/handler/fake"
	"github.com/FlamesIsCool/tagz-bio/internal/repository"
)

var _ = Describe("ProfileHandler", func() {
	var (
		ph            *handler.ProfileHandler
		fakeService   *fake.ProfileService
		fakeValidator *fake.RequestValidator
		fakeLogger    *zap.SugaredLogger
		w             *httptest.ResponseRecorder
		req           *http.Request
		testToken     string
		testUser      repository.User
		fakeErr       error
	)

	BeforeEach(func() {
		testToken = "test-token"
		testUser = repository.User{ID: 1, Username: "alice"}
		fakeErr = errors.New("fake-error")
		fakeLogger = zap.NewNop().Sugar()
		fakeService = new(fake.ProfileService)
		fakeValidator = new(fake.RequestValidator)

		w = httptest.NewRecorder()
		ph = handler.NewProfileHandler(fakeLogger, fakeValidator, fakeService)
	})

	Describe("HandleSignup", func() {
		var response map[string]string

		BeforeEach(func() {
			body := strings.NewReader(`{"username":"alice","email":"alice@example.com","password":"testpass"}`)
			req = httptest.NewRequest("POST", "/api/signup", body)
			req.Header.Set("Content-Type", "application/json")

			fakeValidator.DecodeJSONPayloadStub = func(rec *http.Request, jsonPayload any) error {
				return json.NewDecoder(rec.Body).Decode(jsonPayload)
			}
			fakeService.SignupReturns(testToken, nil)
		})

		JustBeforeEach(func() {
			ph.HandleSignup(w, req)
		})

		When("signup succeeds", func() {
			It("should return an access token", func() {
				Expect(w.Code).To(Equal(http.StatusOK))
				decErr := json.NewDecoder(w.Body).Decode(&response)
				Expect(decErr).NotTo(HaveOccurred())
				Expect(response["access_token"]).To(Equal(testToken))
				Expect(response["token_type"]).To(Equal("bearer"))

				Expect(fakeService.SignupCallCount()).To(Equal(1))
				_, msg := fakeService.SignupArgsForCall(0)
				Expect(msg.Username).To(Equal("alice"))
				Expect(msg.Email).To(Equal("alice@example.com"))

				Expect(fakeValidator.DecodeJSONPayloadCallCount()).To(Equal(1))
				argReq, _ := fakeValidator.DecodeJSONPayloadArgsForCall(0)
				Expect(argReq).To(Equal(req))
			})
		})

		When("payload validation fails", func() {
			BeforeEach(func() {
				fakeValidator.DecodeJSONPayloadStub = nil
				fakeValidator.DecodeJSONPayloadReturns(fakeErr)
			})

			It("should return status 400", func() {
				Expect(w.Code).To(Equal(http.StatusBadRequest))
				Expect(w.Body.String()).To(ContainSubstring(fakeErr.Error()))
				Expect(fakeService.SignupCallCount()).To(Equal(0))
			})
		})

		When("username is taken", func() {
			BeforeEach(func() {
				fakeService.SignupReturns("", core.ErrUsernameTaken)
			})

			It("should return status 400 with the conflict", func() {
				Expect(w.Code).To(Equal(http.StatusBadRequest))
				Expect(w.Body.String()).To(ContainSubstring(core.ErrUsernameTaken.Error()))
			})
		})

		When("email is registered", func() {
			BeforeEach(func() {
				fakeService.SignupReturns("", core.ErrEmailRegistered)
			})

			It("should return status 400 with the conflict", func() {
				Expect(w.Code).To(Equal(http.StatusBadRequest))
				Expect(w.Body.String()).To(ContainSubstring(core.ErrEmailRegistered.Error()))
			})
		})

		When("signup fails unexpectedly", func() {
			BeforeEach(func() {
				fakeService.SignupReturns("", fakeErr)
			})

			It("should return status 500 without leaking the cause", func() {
				Expect(w.Code).To(Equal(http.StatusInternalServerError))
				Expect(w.Body.String()).NotTo(ContainSubstring(fakeErr.Error()))
			})
		})
	})

	Describe("HandleLogin", func() {
		var response map[string]string

		BeforeEach(func() {
			form := url.Values{}
			form.Set("username", "alice")
			form.Set("password", "testpass")
			req = httptest.NewRequest("POST", "/api/login", strings.NewReader(form.Encode()))
			req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

			fakeService.LoginReturns(testToken, nil)
		})

		JustBeforeEach(func() {
			ph.HandleLogin(w, req)
		})

		When("login succeeds", func() {
			It("should return an access token", func() {
				Expect(w.Code).To(Equal(http.StatusOK))
				decErr := json.NewDecoder(w.Body).Decode(&response)
				Expect(decErr).NotTo(HaveOccurred())
				Expect(response["access_token"]).To(Equal(testToken))
				Expect(response["token_type"]).To(Equal("bearer"))

				Expect(fakeService.LoginCallCount()).To(Equal(1))
				_, msg := fakeService.LoginArgsForCall(0)
				Expect(msg.Identifier).To(Equal("alice"))
				Expect(msg.Password).To(Equal("testpass"))
			})
		})

		When("form fields are missing", func() {
			BeforeEach(func() {
				req = httptest.NewRequest("POST", "/api/login", strings.NewReader("username=alice"))
				req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
			})

			It("should return status 400", func() {
				Expect(w.Code).To(Equal(http.StatusBadRequest))
				Expect(fakeService.LoginCallCount()).To(Equal(0))
			})
		})

		When("credentials are invalid", func() {
			BeforeEach(func() {
				fakeService.LoginReturns("", core.ErrInvalidCredentials)
			})

			It("should return status 401", func() {
				Expect(w.Code).To(Equal(http.StatusUnauthorized))
				Expect(w.Body.String()).To(ContainSubstring(core.ErrInvalidCredentials.Error()))
			})
		})

		When("login fails unexpectedly", func() {
			BeforeEach(func() {
				fakeService.LoginReturns("", fakeErr)
			})

			It("should return status 500", func() {
				Expect(w.Code).To(Equal(http.StatusInternalServerError))
				Expect(w.Body.String()).NotTo(ContainSubstring(fakeErr.Error()))
			})
		})
	})

	Describe("HandleMe", func() {
		BeforeEach(func() {
			req = httptest.NewRequest("GET", "/api/me", nil)
			req.Header.Set("Authorization", "Bearer "+testToken)

			fakeService.ResolveSessionReturns(testUser, nil)
			fakeService.ProfileOfReturns(core.ProfileView{
				Username: "alice",
				Bio:      "hello",
				Links:    []core.LinkView{},
			}, nil)
		})

		JustBeforeEach(func() {
			ph.HandleMe(w, req)
		})

		When("session is valid", func() {
			It("should return the owner profile", func() {
				Expect(w.Code).To(Equal(http.StatusOK))
				Expect(w.Body.String()).To(ContainSubstring(`"username":"alice"`))

				Expect(fakeService.ResolveSessionCallCount()).To(Equal(1))
				_, argToken := fakeService.ResolveSessionArgsForCall(0)
				Expect(argToken).To(Equal(testToken))

				Expect(fakeService.ProfileOfCallCount()).To(Equal(1))
				_, argUser := fakeService.ProfileOfArgsForCall(0)
				Expect(argUser).To(Equal(testUser))
			})
		})

		When("no bearer token is provided", func() {
			BeforeEach(func() {
				req.Header.Del("Authorization")
			})

			It("should return status 401", func() {
				Expect(w.Code).To(Equal(http.StatusUnauthorized))
				Expect(w.Body.String()).To(ContainSubstring("bearer token is required"))
				Expect(fakeService.ResolveSessionCallCount()).To(Equal(0))
			})
		})

		When("token is invalid", func() {
			BeforeEach(func() {
				fakeService.ResolveSessionReturns(repository.User{}, core.ErrInvalidToken)
			})

			It("should return status 401", func() {
				Expect(w.Code).To(Equal(http.StatusUnauthorized))
				Expect(w.Body.String()).To(ContainSubstring(core.ErrInvalidToken.Error()))
			})
		})

		When("loading the profile fails", func() {
			BeforeEach(func() {
				fakeService.ProfileOfReturns(core.ProfileView{}, fakeErr)
			})

			It("should return status 500", func() {
				Expect(w.Code).To(Equal(http.StatusInternalServerError))
			})
		})
	})

	Describe("HandleUpdateMe", func() {
		BeforeEach(func() {
			body := strings.NewReader(`{"bio":"new bio","links":[{"title":"Blog","url":"https://blog.example"}]}`)
			req = httptest.NewRequest("PUT", "/api/me", body)
			req.Header.Set("Content-Type", "application/json")
			req.Header.Set("Authorization", "Bearer "+testToken)

			fakeValidator.DecodeJSONPayloadStub = func(rec *http.Request, jsonPayload any) error {
				return json.NewDecoder(rec.Body).Decode(jsonPayload)
			}
			fakeService.ResolveSessionReturns(testUser, nil)
			fakeService.UpdateProfileReturns(core.ProfileView{
				Username: "alice",
				Bio:      "new bio",
				Links: []core.LinkView{
					{ID: 1, Title: "Blog", URL: "https://blog.example"},
				},
			}, nil)
		})

		JustBeforeEach(func() {
			ph.HandleUpdateMe(w, req)
		})

		When("update succeeds", func() {
			It("should return the updated profile", func() {
				Expect(w.Code).To(Equal(http.StatusOK))
				Expect(w.Body.String()).To(ContainSubstring(`"bio":"new bio"`))

				Expect(fakeService.UpdateProfileCallCount()).To(Equal(1))
				_, argUser, msg := fakeService.UpdateProfileArgsForCall(0)
				Expect(argUser).To(Equal(testUser))
				Expect(*msg.Bio).To(Equal("new bio"))
				Expect(msg.Links).To(HaveLen(1))
			})
		})

		When("no bearer token is provided", func() {
			BeforeEach(func() {
				req.Header.Del("Authorization")
			})

			It("should return status 401 before decoding", func() {
				Expect(w.Code).To(Equal(http.StatusUnauthorized))
				Expect(fakeValidator.DecodeJSONPayloadCallCount()).To(Equal(0))
				Expect(fakeService.UpdateProfileCallCount()).To(Equal(0))
			})
		})

		When("payload validation fails", func() {
			BeforeEach(func() {
				fakeValidator.DecodeJSONPayloadStub = nil
				fakeValidator.DecodeJSONPayloadReturns(fakeErr)
			})

			It("should return status 400", func() {
				Expect(w.Code).To(Equal(http.StatusBadRequest))
				Expect(fakeService.UpdateProfileCallCount()).To(Equal(0))
			})
		})

		When("update fails", func() {
			BeforeEach(func() {
				fakeService.UpdateProfileReturns(core.ProfileView{}, fakeErr)
			})

			It("should return status 500", func() {
				Expect(w.Code).To(Equal(http.StatusInternalServerError))
				Expect(w.Body.String()).NotTo(ContainSubstring(fakeErr.Error()))
			})
		})
	})

	Describe("HandlePublicProfile", func() {
		BeforeEach(func() {
			req = httptest.NewRequest("GET", "/api/profile/alice", nil)

			fakeService.PublicProfileReturns(core.ProfileView{
				Username: "alice",
				Links:    []core.LinkView{},
			}, nil)
		})

		JustBeforeEach(func() {
			ph.HandlePublicProfile(w, req)
		})

		When("profile exists", func() {
			It("should return the profile", func() {
				Expect(w.Code).To(Equal(http.StatusOK))
				Expect(w.Body.String()).To(ContainSubstring(`"username":"alice"`))
				Expect(w.Body.String()).To(ContainSubstring(`"links":[]`))

				Expect(fakeService.PublicProfileCallCount()).To(Equal(1))
				_, argUsername := fakeService.PublicProfileArgsForCall(0)
				Expect(argUsername).To(Equal("alice"))
			})
		})

		When("profile does not exist", func() {
			BeforeEach(func() {
				fakeService.PublicProfileReturns(core.ProfileView{}, core.ErrUserNotFound)
			})

			It("should return status 404", func() {
				Expect(w.Code).To(Equal(http.StatusNotFound))
				Expect(w.Body.String()).To(ContainSubstring("Profile not found"))
			})
		})

		When("username path parameter is empty", func() {
			BeforeEach(func() {
				req = httptest.NewRequest("GET", "/api/profile/", nil)
			})

			It("should return status 404", func() {
				Expect(w.Code).To(Equal(http.StatusNotFound))
				Expect(fakeService.PublicProfileCallCount()).To(Equal(0))
			})
		})

		When("loading the profile fails", func() {
			BeforeEach(func() {
				fakeService.PublicProfileReturns(core.ProfileView{}, fakeErr)
			})

			It("should return status 500", func() {
				Expect(w.Code).To(Equal(http.StatusInternalServerError))
				Expect(w.Body.String()).NotTo(ContainSubstring(fakeErr.Error()))
			})
		})
	})

	Describe("HandleHealth", func() {
		BeforeEach(func() {
			req = httptest.NewRequest("GET", "/api/health", nil)
		})

		JustBeforeEach(func() {
			ph.HandleHealth(w, req)
		})

		It("should report the service as up", func() {
			Expect(w.Code).To(Equal(http.StatusOK))

			var response map[string]any
			decErr := json.NewDecoder(w.Body).Decode(&response)
			Expect(decErr).NotTo(HaveOccurred())
			Expect(response["ok"]).To(BeTrue())
			Expect(response["time"]).NotTo(BeEmpty())
		})
	})
})
