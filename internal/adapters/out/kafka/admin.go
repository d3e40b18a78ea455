package kafka

import (
	"errors"
	"fmt"

	"github.com/IBM/sarama"
)

const topicRetention = "604800000" // 7 days

type topicAdmin interface {
	ListTopics() (map[string]sarama.TopicDetail, error)
	CreateTopic(topic string, detail *sarama.TopicDetail, validateOnly bool) error
}

// EnsureTopics creates any of topics the cluster does not have yet.
func EnsureTopics(brokers []string, topics ...string) error {
	config := sarama.NewConfig()
	config.Version = sarama.V2_1_0_0

	admin, err := sarama.NewClusterAdmin(brokers, config)
	if err != nil {
		return fmt.Errorf("create kafka admin: %w", err)
	}

	return errors.Join(ensureTopics(admin, topics), admin.Close())
}

func ensureTopics(admin topicAdmin, topics []string) error {
	existing, err := admin.ListTopics()
	if err != nil {
		return fmt.Errorf("list topics: %w", err)
	}
	if existing == nil {
		existing = make(map[string]sarama.TopicDetail)
	}

	retention := topicRetention
	for _, topic := range topics {
		if _, ok := existing[topic]; ok {
			continue
		}

		err = admin.CreateTopic(topic, &sarama.TopicDetail{
			NumPartitions:     1,
			ReplicationFactor: 1,
			ConfigEntries:     map[string]*string{"retention.ms": &retention},
		}, false)
		if err != nil && !errors.Is(err, sarama.ErrTopicAlreadyExists) {
			return fmt.Errorf("create topic %s: %w", topic, err)
		}
		existing[topic] = sarama.TopicDetail{}
	}

	return nil
}
