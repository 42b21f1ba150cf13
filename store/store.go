package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/request"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/dynamodb"
	"github.com/google/uuid"

	"github.com/jsphweid/chordsheet/constants"
	"github.com/jsphweid/chordsheet/model"
)

var ErrNotFound = errors.New("song not found")

// the subset of the DynamoDB client the store uses
type itemAPI interface {
	GetItemWithContext(ctx aws.Context, input *dynamodb.GetItemInput, opts ...request.Option) (*dynamodb.GetItemOutput, error)
	PutItemWithContext(ctx aws.Context, input *dynamodb.PutItemInput, opts ...request.Option) (*dynamodb.PutItemOutput, error)
}

// Store keeps songs in a DynamoDB table. The song itself is stored as one
// opaque JSON attribute; only the id and title are broken out.
type Store struct {
	client itemAPI
	table  string
}

func New(endpoint string, region string, table string) (*Store, error) {
	cfg := &aws.Config{Region: aws.String(region)}
	if endpoint != "" {
		cfg.Endpoint = aws.String(endpoint)
	}
	sess, err := session.NewSession(cfg)
	if err != nil {
		return nil, fmt.Errorf("could not create a new DynamoDB session: %w", err)
	}
	return &Store{client: dynamodb.New(sess), table: table}, nil
}

func (s *Store) Get(ctx context.Context, id string) (model.Song, error) {
	var song model.Song
	out, err := s.client.GetItemWithContext(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(s.table),
		Key: map[string]*dynamodb.AttributeValue{
			constants.SongsKeyAttribute: {S: aws.String(id)},
		},
	})
	if err != nil {
		return song, fmt.Errorf("error from DynamoDB: %w", err)
	}
	if out.Item == nil || out.Item["Data"] == nil || out.Item["Data"].S == nil {
		return song, fmt.Errorf("%w: %v", ErrNotFound, id)
	}
	if err := json.Unmarshal([]byte(*out.Item["Data"].S), &song); err != nil {
		return song, fmt.Errorf("could not decode song %v: %w", id, err)
	}
	return song, nil
}

// Put saves the song, giving it a fresh id when it has none, and returns what
// was saved.
func (s *Store) Put(ctx context.Context, song model.Song) (model.Song, error) {
	if song.ID == "" {
		song.ID = uuid.New().String()
	}
	data, err := json.Marshal(song)
	if err != nil {
		return song, fmt.Errorf("could not encode song %v: %w", song.ID, err)
	}
	_, err = s.client.PutItemWithContext(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(s.table),
		Item: map[string]*dynamodb.AttributeValue{
			constants.SongsKeyAttribute: {S: aws.String(song.ID)},
			"Title":                     {S: aws.String(song.Title)},
			"Data":                      {S: aws.String(string(data))},
		},
	})
	if err != nil {
		return song, fmt.Errorf("error from DynamoDB: %w", err)
	}
	return song, nil
}
