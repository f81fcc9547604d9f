package services

import (
	"context"
	"errors"
	"mime/multipart"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"asset-history-api/internal/application/ports"
	"asset-history-api/internal/domain/asset"
	"asset-history-api/internal/domain/owner"
	"asset-history-api/internal/infrastructure/mediakit"
	"asset-history-api/internal/infrastructure/mq"
)

// uploadState tracks one in-flight upload through the linear pipeline
// validate -> sign -> transfer -> persist. Terminal states are final; a
// failed or cancelled upload never mutates the ledger.
type uploadState string

const (
	stateValidating       uploadState = "validating"
	stateCredentialIssued uploadState = "credential_issued"
	stateTransferring     uploadState = "transferring"
	stateSucceeded        uploadState = "succeeded"
	stateFailed           uploadState = "failed"
	stateCancelled        uploadState = "cancelled"
)

type AssetHistoryService struct {
	policy      FilePolicy
	signer      ports.CredentialSigner
	uploader    ports.Uploader
	urls        ports.URLBuilder
	ownerRepo   owner.Repository
	assetRepo   asset.Repository
	mq          ports.RabbitMQ
	mCounter    *prometheus.CounterVec
	log         *zap.Logger
	maxRetained int
}

func NewAssetHistoryService(
	policy FilePolicy,
	signer ports.CredentialSigner,
	uploader ports.Uploader,
	urls ports.URLBuilder,
	ownerRepo owner.Repository,
	assetRepo asset.Repository,
	rbMQ ports.RabbitMQ,
	mCounter *prometheus.CounterVec,
	logger *zap.Logger,
	maxRetained int,
) ports.AssetHistoryService {
	return &AssetHistoryService{
		policy:      policy,
		signer:      signer,
		uploader:    uploader,
		urls:        urls,
		ownerRepo:   ownerRepo,
		assetRepo:   assetRepo,
		mq:          rbMQ,
		mCounter:    mCounter,
		log:         logger,
		maxRetained: maxRetained,
	}
}

// UploadAsset drives one upload end to end. Exactly one terminal outcome
// is returned; onProgress stops firing before that outcome is delivered.
func (s *AssetHistoryService) UploadAsset(
	ctx context.Context,
	ownerUUID owner.UUID,
	slot asset.Slot,
	in *multipart.FileHeader,
	onProgress ports.ProgressFunc,
) (*asset.AssetRecord, error) {
	log := s.log.With(
		zap.String("owner_id", ownerUUID.String()),
		zap.String("slot", slot.String()),
	)

	log.Debug("upload state", zap.String("state", string(stateValidating)))
	if err := s.policy.Validate(in); err != nil {
		s.mCounter.WithLabelValues("uploads_rejected_total").Inc()
		return nil, err
	}

	cred, err := s.signer.IssueCredential()
	if err != nil {
		return nil, err
	}
	log.Debug("upload state", zap.String("state", string(stateCredentialIssued)))

	if ctx.Err() != nil {
		s.mCounter.WithLabelValues("uploads_cancelled_total").Inc()
		return nil, asset.ErrCancelled
	}

	f, err := in.Open()
	if err != nil {
		return nil, asset.ErrNoFile
	}
	defer f.Close()

	log.Debug("upload state", zap.String("state", string(stateTransferring)))
	info, err := s.uploader.Upload(ctx, mediakit.UploadRequest{
		OwnerRef:    ownerUUID.String(),
		Slot:        slot,
		FileName:    in.Filename,
		ContentType: in.Header.Get("Content-Type"),
		Body:        f,
		SizeBytes:   in.Size,
		Credential:  cred,
	}, onProgress)
	if err != nil {
		if errors.Is(err, asset.ErrCancelled) {
			s.mCounter.WithLabelValues("uploads_cancelled_total").Inc()
			log.Info("upload state", zap.String("state", string(stateCancelled)))
		} else {
			s.mCounter.WithLabelValues("uploads_failed_total").Inc()
			log.Warn("upload state", zap.String("state", string(stateFailed)), zap.Error(err))
		}
		return nil, err
	}

	ownerID, err := s.ownerRepo.EnsureOwner(ctx, ownerUUID)
	if err != nil {
		s.orphanWarn(log, info.RemoteRef, err)
		return nil, err
	}

	rec, pruned, err := s.assetRepo.AppendVersion(ctx, ownerID, slot, *info, s.maxRetained)
	if err != nil {
		s.orphanWarn(log, info.RemoteRef, err)
		return nil, err
	}

	log.Info("upload state",
		zap.String("state", string(stateSucceeded)),
		zap.String("version_id", rec.UUID.String()),
		zap.Int("pruned", len(pruned)),
	)
	s.mCounter.WithLabelValues("uploads_succeeded_total").Inc()

	s.enqueue(mq.Event{
		Id:        uuid.New(),
		TS:        time.Now().UTC(),
		Kind:      mq.KindUploaded,
		OwnerID:   ownerUUID.String(),
		Slot:      slot.String(),
		VersionID: rec.UUID.String(),
		RemoteRef: rec.RemoteRef,
		URL:       rec.URL,
	})
	for _, p := range pruned {
		s.mCounter.WithLabelValues("versions_pruned_total").Inc()
		s.enqueue(mq.Event{
			Id:        uuid.New(),
			TS:        time.Now().UTC(),
			Kind:      mq.KindPruneDelete,
			OwnerID:   ownerUUID.String(),
			Slot:      slot.String(),
			VersionID: p.UUID.String(),
			RemoteRef: p.RemoteRef,
		})
	}

	return rec, nil
}

func (s *AssetHistoryService) ListHistory(ctx context.Context, ownerUUID owner.UUID, slot asset.Slot, limit int) (asset.AssetRecords, error) {
	if limit <= 0 || limit > s.maxRetained {
		limit = s.maxRetained
	}

	ownerID, err := s.ownerRepo.FetchInternalID(ctx, ownerUUID)
	if err != nil {
		if errors.Is(err, asset.ErrOwnerNotFound) {
			// owner never uploaded: empty history, not an error
			return asset.AssetRecords{}, nil
		}
		return nil, err
	}

	return s.assetRepo.FetchHistory(ctx, ownerID, slot, limit)
}

func (s *AssetHistoryService) ActivateVersion(ctx context.Context, ownerUUID owner.UUID, slot asset.Slot, versionUUID uuid.UUID) (string, error) {
	ownerID, err := s.ownerRepo.FetchInternalID(ctx, ownerUUID)
	if err != nil {
		if errors.Is(err, asset.ErrOwnerNotFound) {
			return "", asset.ErrNotFound
		}
		return "", err
	}

	rec, err := s.assetRepo.ActivateVersion(ctx, ownerID, slot, versionUUID)
	if err != nil {
		return "", err
	}

	s.mCounter.WithLabelValues("versions_activated_total").Inc()
	s.enqueue(mq.Event{
		Id:        uuid.New(),
		TS:        time.Now().UTC(),
		Kind:      mq.KindActivated,
		OwnerID:   ownerUUID.String(),
		Slot:      slot.String(),
		VersionID: rec.UUID.String(),
		RemoteRef: rec.RemoteRef,
		URL:       rec.URL,
	})

	return rec.URL, nil
}

func (s *AssetHistoryService) DerivedURLs(baseURL string, slot asset.Slot) map[string]string {
	return s.urls.Derive(baseURL, slot)
}

func (s *AssetHistoryService) IsConfigured() bool {
	return s.uploader.IsConfigured()
}

// enqueue hands an event to the publisher worker without ever blocking the
// upload path; a full buffer drops the event with a warning.
func (s *AssetHistoryService) enqueue(e mq.Event) {
	select {
	case s.mq.GetInputChan() <- e:
	default:
		s.log.Warn("mq buffer full, dropping event",
			zap.String("kind", e.Kind),
			zap.String("version_id", e.VersionID),
		)
	}
}

// orphanWarn records that a transferred object has no ledger entry. The
// remote object is not rolled back; cleanup is left to store retention.
func (s *AssetHistoryService) orphanWarn(log *zap.Logger, remoteRef string, err error) {
	s.mCounter.WithLabelValues("uploads_orphaned_total").Inc()
	log.Error("ledger append failed after successful transfer, remote object orphaned",
		zap.String("remote_ref", remoteRef),
		zap.Error(err),
	)
}
