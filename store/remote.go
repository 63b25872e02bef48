package store

import (
	"context"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"MindHub360/models"
)

// Remote mirrors shared collections to a hosted mongo instance. The
// application never depends on it: every method is a no-op on a nil
// receiver and every failure is logged and swallowed, so the local store
// stays authoritative for read-your-writes.
type Remote struct {
	db *mongo.Database
}

func ConnectRemote(ctx context.Context, uri, database string) (*Remote, error) {
	if uri == "" {
		return nil, nil
	}
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, err
	}
	if err := client.Ping(ctx, nil); err != nil {
		return nil, err
	}
	return &Remote{db: client.Database(database)}, nil
}

/*
* Replace the remote copy of one collection wholesale, matching the
* local store's whole-collection write semantics.
 */
func (r *Remote) mirror(ctx context.Context, collection string, docs []interface{}) {
	if r == nil {
		return
	}
	coll := r.db.Collection(collection)
	if _, err := coll.DeleteMany(ctx, bson.M{}); err != nil {
		log.Println("remote mirror of", collection, "failed:", err)
		return
	}
	if len(docs) == 0 {
		return
	}
	if _, err := coll.InsertMany(ctx, docs); err != nil {
		log.Println("remote mirror of", collection, "failed:", err)
	}
}

func (r *Remote) MirrorTherapyRequests(ctx context.Context, requests []models.TherapyRequest) {
	docs := make([]interface{}, 0, len(requests))
	for _, req := range requests {
		docs = append(docs, req)
	}
	r.mirror(ctx, KeyTherapyRequests, docs)
}

func (r *Remote) MirrorPosts(ctx context.Context, posts []models.Post) {
	docs := make([]interface{}, 0, len(posts))
	for _, p := range posts {
		docs = append(docs, p)
	}
	r.mirror(ctx, KeyPosts, docs)
}

func (r *Remote) MirrorReplies(ctx context.Context, replies []models.Reply) {
	docs := make([]interface{}, 0, len(replies))
	for _, rep := range replies {
		docs = append(docs, rep)
	}
	r.mirror(ctx, KeyReplies, docs)
}

func (r *Remote) MirrorPostLikes(ctx context.Context, likes []models.PostLike) {
	docs := make([]interface{}, 0, len(likes))
	for _, l := range likes {
		docs = append(docs, l)
	}
	r.mirror(ctx, KeyPostLikes, docs)
}

/*
* Subscribe to remote change streams and call onChange with the
* collection name whenever another client writes it. Correctness never
* depends on these events arriving; they only prompt a re-fetch.
 */
func (r *Remote) Watch(ctx context.Context, collections []string, onChange func(collection string)) {
	if r == nil {
		return
	}
	for _, name := range collections {
		go func(name string) {
			stream, err := r.db.Collection(name).Watch(ctx, mongo.Pipeline{})
			if err != nil {
				log.Println("change stream for", name, "unavailable:", err)
				return
			}
			defer stream.Close(ctx)
			for stream.Next(ctx) {
				onChange(name)
			}
			if err := stream.Err(); err != nil && ctx.Err() == nil {
				log.Println("change stream for", name, "ended:", err)
			}
		}(name)
	}
}
