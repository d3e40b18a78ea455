package kafka

import "github.com/IBM/sarama"

type TopicAdmin = topicAdmin

func EnsureTopicsWith(admin TopicAdmin, topics ...string) error {
	return ensureTopics(admin, topics)
}

var _ TopicAdmin = (sarama.ClusterAdmin)(nil)
