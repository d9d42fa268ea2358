package session_test

import (
	"context"
	"log/slog"
	"os"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/docuflow/docuflow-cli/internal/core/datamodel/identity"
	"github.com/docuflow/docuflow-cli/internal/session"
)

type mockIdentityAPI struct {
	ident     *identity.Identity
	err       error
	callCount int
}

func (m *mockIdentityAPI) CurrentUser(ctx context.Context) (*identity.Identity, error) {
	m.callCount++
	if m.err != nil {
		return nil, m.err
	}
	return m.ident, nil
}

var _ = Describe("Provider", func() {
	var (
		mockAPI  *mockIdentityAPI
		provider *session.Provider
		ctx      context.Context
	)

	BeforeEach(func() {
		mockAPI = &mockIdentityAPI{
			ident: &identity.Identity{
				Name:        "Ana",
				Email:       "ana@acme.com",
				CompanyName: "Acme",
				IsAdmin:     true,
			},
		}
		logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
		provider = session.NewProvider(mockAPI, logger)
		ctx = context.Background()
	})

	Describe("Identity", func() {
		It("should fetch once and serve the cache afterwards", func() {
			first, err := provider.Identity(ctx)
			Expect(err).ToNot(HaveOccurred())
			Expect(first.Email).To(Equal("ana@acme.com"))

			second, err := provider.Identity(ctx)
			Expect(err).ToNot(HaveOccurred())
			Expect(second).To(Equal(first))
			Expect(mockAPI.callCount).To(Equal(1))
		})

		It("should surface the fetch error without caching anything", func() {
			mockAPI.err = context.DeadlineExceeded

			_, err := provider.Identity(ctx)
			Expect(err).To(HaveOccurred())

			mockAPI.err = nil
			ident, err := provider.Identity(ctx)
			Expect(err).ToNot(HaveOccurred())
			Expect(ident).ToNot(BeNil())
			Expect(mockAPI.callCount).To(Equal(2))
		})
	})

	Describe("Established", func() {
		It("should seed the cache so no fetch is needed", func() {
			provider.Established(&identity.Identity{Email: "bo@acme.com"})

			ident, err := provider.Identity(ctx)
			Expect(err).ToNot(HaveOccurred())
			Expect(ident.Email).To(Equal("bo@acme.com"))
			Expect(mockAPI.callCount).To(BeZero())
		})
	})

	Describe("Invalidate", func() {
		It("should force a refetch on the next Identity call", func() {
			_, err := provider.Identity(ctx)
			Expect(err).ToNot(HaveOccurred())

			provider.Invalidate()

			_, err = provider.Identity(ctx)
			Expect(err).ToNot(HaveOccurred())
			Expect(mockAPI.callCount).To(Equal(2))
		})
	})

	Describe("Subscribe", func() {
		It("should notify subscribers on every change including invalidation", func() {
			var seen []*identity.Identity
			provider.Subscribe(func(ident *identity.Identity) {
				seen = append(seen, ident)
			})

			_, err := provider.Refresh(ctx)
			Expect(err).ToNot(HaveOccurred())
			provider.Invalidate()

			Expect(seen).To(HaveLen(2))
			Expect(seen[0]).ToNot(BeNil())
			Expect(seen[0].Email).To(Equal("ana@acme.com"))
			Expect(seen[1]).To(BeNil())
		})
	})
})
