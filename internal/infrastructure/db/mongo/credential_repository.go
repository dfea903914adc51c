package mongo

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"golang.org/x/crypto/bcrypt"

	"github.com/mediguard/security-dashboard/internal/core/domain"
	"github.com/mediguard/security-dashboard/internal/core/ports"
)

const (
	credentialCollection = "credentials"

	// bcrypt only reads this many bytes of a secret.
	maxSecretLen = 72
)

// CredentialRepository serves the demo account set from MongoDB. Secrets are
// stored as bcrypt hashes; a match still requires the exact address and secret.
type CredentialRepository struct {
	coll *mongo.Collection
}

var _ ports.CredentialRepository = (*CredentialRepository)(nil)

func NewCredentialRepository(db *mongo.Database) *CredentialRepository {
	return &CredentialRepository{coll: db.Collection(credentialCollection)}
}

type mongoCredential struct {
	Email        string `bson:"_id"`
	PasswordHash string `bson:"password_hash"`
	UserID       string `bson:"user_id"`
	Username     string `bson:"username"`
	Role         string `bson:"role"`
	Department   string `bson:"department"`
	RiskScore    int    `bson:"risk_score"`
}

// Seed upserts records, keyed by email. Existing hashes are replaced so a
// changed seed secret takes effect on the next start.
func (r *CredentialRepository) Seed(ctx context.Context, records []domain.Credential) error {
	for _, rec := range records {
		hash, err := bcrypt.GenerateFromPassword([]byte(rec.Password), bcrypt.DefaultCost)
		if err != nil {
			return fmt.Errorf("hash seed secret: %w", err)
		}

		doc := mongoCredential{
			Email:        rec.Email,
			PasswordHash: string(hash),
			UserID:       rec.Template.ID,
			Username:     rec.Template.Username,
			Role:         string(rec.Template.Role),
			Department:   rec.Template.Department,
			RiskScore:    rec.Template.RiskScore,
		}

		_, err = r.coll.ReplaceOne(ctx, bson.M{"_id": rec.Email}, doc, options.Replace().SetUpsert(true))
		if err != nil {
			return fmt.Errorf("seed credential %s: %w", rec.Email, err)
		}
	}
	return nil
}

func (r *CredentialRepository) Match(ctx context.Context, email, password string) (*domain.Credential, error) {
	if len(password) > maxSecretLen {
		return nil, domain.ErrInvalidCredentials
	}

	var mc mongoCredential
	if err := r.coll.FindOne(ctx, bson.M{"_id": email}).Decode(&mc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("find credential: %w", err)
	}

	if bcrypt.CompareHashAndPassword([]byte(mc.PasswordHash), []byte(password)) != nil {
		return nil, domain.ErrInvalidCredentials
	}

	return &domain.Credential{
		Email:    mc.Email,
		Password: password,
		Template: domain.Identity{
			ID:         mc.UserID,
			Username:   mc.Username,
			Email:      mc.Email,
			Role:       domain.Role(mc.Role),
			Department: mc.Department,
			RiskScore:  mc.RiskScore,
		},
	}, nil
}

func (r *CredentialRepository) Exists(ctx context.Context, email string) (bool, error) {
	n, err := r.coll.CountDocuments(ctx, bson.M{"_id": email}, options.Count().SetLimit(1))
	if err != nil {
		return false, fmt.Errorf("count credentials: %w", err)
	}
	return n > 0, nil
}
