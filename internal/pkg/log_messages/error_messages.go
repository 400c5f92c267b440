package log_messages

const (
	ErrorReadingConfigFile         = "failed to read config file %s: %w"
	ErrorUnmarshallingConfig       = "failed to unmarshal config: %w"
	ConfigLoaded                   = "Configuration loaded successfully"
	ErrorMarshallingMessage        = "failed to marshal message: %v"
	ErrorInMessagePublishing       = "failed to publish message: %v"
	ErrorPubSubClientCreation      = "error creating pubsub client: %v"
	TopicDoesNotExists             = "pubsub topic does not exist: %v"
	KafkaProducerCreated           = "Kafka producer created"
	ErrorKafkaProducerCreation     = "failed to create kafka producer: %w"
	ErrorKafkaDelivery             = "kafka delivery failed: %w"
	KafkaDeliveryTimeout           = "timeout waiting for Kafka delivery report"
	ErrorPublishingCollectionEvent = "failed to publish collection event"
	ErrorDispatchingNotification   = "failed to dispatch notification"
	ErrorClosingGCSClient          = "failed to close GCS client"
	ErrorUploadingToGCSBucket      = "failed to upload object to GCS bucket"
	ErrorClosingGCSWriter          = "failed to close GCS writer"
	UploadedToGCSBucket            = "uploaded object to GCS bucket"
	ErrorCreatingIndexes           = "failed to create mongo indexes"
	ErrorInsertingDocument         = "failed to insert document"
	ErrorFindingDocuments          = "failed to find documents"
	ErrorUpdatingDocument          = "failed to update document"
	ErrorDeletingDocument          = "failed to delete document"
	ErrorCountingDocuments         = "failed to count documents"
	ErrorAggregatingDocuments      = "failed to run aggregation pipeline"
	DocumentNotFound               = "no matching document found"
	ErrorSeedingData               = "failed to seed dummy data"
	ErrorSavingSyncRecord          = "failed to cache ProFIX sync record"
	UnexpectedError                = "An unexpected error occurred"
	InvalidInputData               = "Invalid input data"
)
