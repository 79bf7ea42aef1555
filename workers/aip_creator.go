package workers

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/nsqio/go-nsq"

	"github.com/hetarchief/aip-services/aip"
	"github.com/hetarchief/aip-services/constants"
	"github.com/hetarchief/aip-services/models/common"
	"github.com/hetarchief/aip-services/models/service"
	sipmodel "github.com/hetarchief/aip-services/models/sip"
)

// AIPCreator consumes SIP-validated events, assembles one AIP per event and
// publishes a completion message for the transport service. Processing is
// strictly sequential: max_in_flight is one, and HandleMessage blocks until
// the package is fully on disk.
type AIPCreator struct {
	Context   *common.Context
	Assembler *aip.Assembler
	consumer  *nsq.Consumer
}

func NewAIPCreator(ctx *common.Context) (*AIPCreator, error) {
	renderer, err := aip.NewTemplateRenderer()
	if err != nil {
		return nil, err
	}
	return &AIPCreator{
		Context:   ctx,
		Assembler: aip.NewAssembler(ctx.Config, ctx.Logger, renderer),
	}, nil
}

// RegisterAsNsqConsumer registers this worker on the configured topic and
// channel. Note that as soon as you call this, the worker will start
// handling messages if any are available.
func (creator *AIPCreator) RegisterAsNsqConsumer() error {
	config := nsq.NewConfig()
	config.Set("heartbeat_interval", "10s")
	config.Set("max_in_flight", 1)
	consumer, err := nsq.NewConsumer(creator.Context.Config.NsqTopic, creator.Context.Config.NsqChannel, config)
	if err != nil {
		return err
	}
	creator.consumer = consumer
	consumer.AddHandler(creator)
	return consumer.ConnectToNSQLookupd(creator.Context.Config.NsqLookupd)
}

// Stop disconnects the consumer. The in-flight message, if any, runs to
// completion first.
func (creator *AIPCreator) Stop() {
	if creator.consumer != nil {
		creator.consumer.Stop()
		<-creator.consumer.StopChan
	}
}

// Wait blocks until the consumer stops.
func (creator *AIPCreator) Wait() {
	if creator.consumer != nil {
		<-creator.consumer.StopChan
	}
}

// HandleMessage is the nsq.Handler entry point. Returning an error causes a
// negative acknowledgment and redelivery; returning nil acknowledges.
func (creator *AIPCreator) HandleMessage(message *nsq.Message) error {
	envelope, err := service.EnvelopeFromJSON(message.Body)
	if err != nil {
		creator.Context.Logger.Errorf("Cannot decode envelope: %v", err)
		return err
	}
	if !envelope.HasSuccessfulOutcome() {
		creator.Context.Logger.Infof("Dropping event %s with outcome %q", envelope.ID, envelope.Outcome)
		return nil
	}

	correlationID := envelope.CorrelationID
	if correlationID == "" {
		correlationID = uuid.New().String()
	}
	creator.Context.Logger.Infof("Start handling of %s (correlation %s)", envelope.Subject, correlationID)

	result := service.NewWorkResult(constants.OperationAIPCreation)
	result.Start()
	procErr := creator.processEnvelope(envelope, correlationID)
	if procErr != nil {
		result.AddError(procErr)
		creator.Context.Logger.Error(procErr.Error())
	}
	result.Finish()
	creator.saveWorkResult(correlationID, result)

	if procErr != nil {
		return procErr
	}
	creator.Context.Logger.Infof("Finished %s in %s", envelope.Subject, result.RunTime())
	return nil
}

func (creator *AIPCreator) processEnvelope(envelope *service.Envelope, correlationID string) *service.ProcessingError {
	if envelope.Subject == "" {
		return service.NewProcessingError(correlationID, envelope.ID, "envelope has no subject", true)
	}

	sip, err := sipmodel.FromJSON(envelope.Data)
	if err != nil {
		return service.NewProcessingError(correlationID, envelope.Subject,
			fmt.Sprintf("cannot decode SIP: %v", err), true)
	}

	handler, err := aip.Dispatch(sip.Profile)
	if err != nil {
		return service.NewProcessingError(correlationID, envelope.Subject, err.Error(), true)
	}

	// The PID is issued only after the profile is known to be supported,
	// so unsupported SIPs never burn an identifier.
	pid, err := creator.Context.PidClient.GetPid()
	if err != nil {
		return service.NewProcessingError(correlationID, envelope.Subject,
			fmt.Sprintf("cannot get pid: %v", err), false)
	}

	pkg, err := creator.Assembler.Assemble(sip, handler, pid)
	if err != nil {
		return service.NewProcessingError(correlationID, envelope.Subject, err.Error(), true)
	}

	creator.uploadZip(pkg)

	if err := creator.publishCompletion(envelope, pkg, correlationID); err != nil {
		return service.NewProcessingError(correlationID, envelope.Subject,
			fmt.Sprintf("cannot publish completion message: %v", err), false)
	}
	return nil
}

// uploadZip delivers the zip to the S3 staging bucket when one is
// configured. Failure is logged but does not fail the message; the
// transport service can still pick the zip up from the shared folder.
func (creator *AIPCreator) uploadZip(pkg *aip.AIPPackage) {
	if creator.Context.S3Client == nil {
		return
	}
	objectName := filepath.Base(pkg.ZipPath)
	_, err := creator.Context.S3Client.FPutObject(
		context.Background(),
		creator.Context.Config.S3Bucket,
		objectName,
		pkg.ZipPath,
		minio.PutObjectOptions{ContentType: "application/zip"})
	if err != nil {
		creator.Context.Logger.Warningf("Cannot upload %s to bucket %s: %v",
			objectName, creator.Context.Config.S3Bucket, err)
		return
	}
	creator.Context.Logger.Infof("Uploaded %s to bucket %s", objectName, creator.Context.Config.S3Bucket)
}

func (creator *AIPCreator) publishCompletion(envelope *service.Envelope, pkg *aip.AIPPackage, correlationID string) error {
	message := &service.CompletionMessage{
		Source:        envelope.Subject,
		Host:          creator.Context.Config.Host,
		Paths:         []string{pkg.ZipPath},
		CPID:          pkg.CPID,
		Type:          constants.PackageType,
		SIPProfile:    pkg.Profile,
		PID:           pkg.PID,
		Outcome:       constants.OutcomeSuccess,
		Metadata:      pkg.METS,
		Message:       fmt.Sprintf("AIP %s created", pkg.PID),
		CorrelationID: correlationID,
	}
	data, err := message.ToJSON()
	if err != nil {
		return err
	}
	return creator.Context.NSQClient.Publish(creator.Context.Config.NsqProducerTopic, data)
}

// saveWorkResult keeps the interim result in Redis for operators to
// inspect. A failed save is logged and swallowed; it must not fail a
// message whose package is already on disk.
func (creator *AIPCreator) saveWorkResult(correlationID string, result *service.WorkResult) {
	if err := creator.Context.RedisClient.WorkResultSave(correlationID, result); err != nil {
		creator.Context.Logger.Errorf("Cannot save work result for %s: %v", correlationID, err)
	}
}
