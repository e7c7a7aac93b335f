package mongo_test

import (
	"context"
	"exercisetracker/internal/core"
	mongostore "exercisetracker/internal/mongo"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
)

const ns = "exercisetracker.users"

func day(d int) time.Time {
	return time.Date(2023, time.January, d, 0, 0, 0, 0, time.UTC)
}

func userDoc(id, username string, log ...bson.D) bson.D {
	entries := bson.A{}
	for _, e := range log {
		entries = append(entries, e)
	}
	return bson.D{
		{Key: "_id", Value: id},
		{Key: "username", Value: username},
		{Key: "seq", Value: primitive.NewObjectID()},
		{Key: "log", Value: entries},
	}
}

func exerciseDoc(description string, duration int, date time.Time) bson.D {
	return bson.D{
		{Key: "description", Value: description},
		{Key: "duration", Value: duration},
		{Key: "date", Value: date},
	}
}

var _ = Describe("Store", func() {
	var (
		ctx context.Context
		mt  *mtest.T
	)

	// withMock runs body against a fresh mock deployment. mtest drives it as a
	// subtest, so failures are recovered back into the running spec.
	withMock := func(body func(mt *mtest.T, store *mongostore.Store)) {
		mt.Run(CurrentSpecReport().LeafNodeText, func(mt *mtest.T) {
			defer GinkgoRecover()
			body(mt, mongostore.NewStore(mt.DB))
		})
	}

	BeforeEach(func() {
		ctx = context.Background()
		mt = mtest.New(suiteT, mtest.NewOptions().ClientType(mtest.Mock))
	})

	Describe("CreateUser", func() {
		It("should insert a new user", func() {
			withMock(func(mt *mtest.T, store *mongostore.Store) {
				mt.AddMockResponses(mtest.CreateSuccessResponse())

				Expect(store.CreateUser(ctx, core.User{ID: "u1", Username: "alice"})).To(Succeed())

				started := mt.GetStartedEvent()
				Expect(started).NotTo(BeNil())
				Expect(started.CommandName).To(Equal("insert"))
			})
		})

		When("username is taken", func() {
			It("should return a conflict error", func() {
				withMock(func(mt *mtest.T, store *mongostore.Store) {
					mt.AddMockResponses(mtest.CreateWriteErrorsResponse(mtest.WriteError{
						Index:   0,
						Code:    11000,
						Message: "E11000 duplicate key error collection: exercisetracker.users index: username_1",
					}))

					err := store.CreateUser(ctx, core.User{ID: "u2", Username: "alice"})
					Expect(err).To(MatchError(core.ErrUsernameTaken))
				})
			})
		})

		When("the command fails otherwise", func() {
			It("should pass the error through", func() {
				withMock(func(mt *mtest.T, store *mongostore.Store) {
					mt.AddMockResponses(mtest.CreateCommandErrorResponse(mtest.CommandError{
						Code:    2,
						Message: "bad value",
					}))

					err := store.CreateUser(ctx, core.User{ID: "u3", Username: "carol"})
					Expect(err).To(HaveOccurred())
					Expect(err).NotTo(MatchError(core.ErrUsernameTaken))
				})
			})
		})
	})

	Describe("ListUsers", func() {
		It("should return users in cursor order", func() {
			withMock(func(mt *mtest.T, store *mongostore.Store) {
				mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch,
					userDoc("u1", "alice"),
					userDoc("u2", "bob"),
				))

				users, err := store.ListUsers(ctx)
				Expect(err).NotTo(HaveOccurred())
				Expect(users).To(Equal([]core.User{
					{ID: "u1", Username: "alice"},
					{ID: "u2", Username: "bob"},
				}))
			})
		})

		When("there are no users", func() {
			It("should return an empty, non-nil slice", func() {
				withMock(func(mt *mtest.T, store *mongostore.Store) {
					mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch))

					users, err := store.ListUsers(ctx)
					Expect(err).NotTo(HaveOccurred())
					Expect(users).NotTo(BeNil())
					Expect(users).To(BeEmpty())
				})
			})
		})
	})

	Describe("GetUser", func() {
		It("should find a user by id", func() {
			withMock(func(mt *mtest.T, store *mongostore.Store) {
				mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch, userDoc("u1", "alice")))

				user, err := store.GetUser(ctx, "u1")
				Expect(err).NotTo(HaveOccurred())
				Expect(user).To(Equal(core.User{ID: "u1", Username: "alice"}))
			})
		})

		When("id is unknown", func() {
			It("should return not found", func() {
				withMock(func(mt *mtest.T, store *mongostore.Store) {
					mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch))

					_, err := store.GetUser(ctx, "missing")
					Expect(err).To(MatchError(core.ErrUserNotFound))
				})
			})
		})
	})

	Describe("AppendExercise", func() {
		It("should push onto an existing log", func() {
			withMock(func(mt *mtest.T, store *mongostore.Store) {
				mt.AddMockResponses(mtest.CreateSuccessResponse(
					bson.E{Key: "n", Value: 1},
					bson.E{Key: "nModified", Value: 1},
				))

				err := store.AppendExercise(ctx, "u1", core.Exercise{Description: "run", Duration: 30, Date: day(15)})
				Expect(err).NotTo(HaveOccurred())

				started := mt.GetStartedEvent()
				Expect(started).NotTo(BeNil())
				Expect(started.CommandName).To(Equal("update"))
			})
		})

		When("nothing matched", func() {
			It("should return not found", func() {
				withMock(func(mt *mtest.T, store *mongostore.Store) {
					mt.AddMockResponses(mtest.CreateSuccessResponse(
						bson.E{Key: "n", Value: 0},
						bson.E{Key: "nModified", Value: 0},
					))

					err := store.AppendExercise(ctx, "missing", core.Exercise{Description: "run", Duration: 30, Date: day(15)})
					Expect(err).To(MatchError(core.ErrUserNotFound))
				})
			})
		})
	})

	Describe("GetLog", func() {
		logged := func() bson.D {
			return userDoc("u1", "alice",
				exerciseDoc("d3", 10, day(3)),
				exerciseDoc("d1", 10, day(1)),
				exerciseDoc("d2", 10, day(2)),
			)
		}

		It("should return the log in insertion order", func() {
			withMock(func(mt *mtest.T, store *mongostore.Store) {
				mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch, logged()))

				log, err := store.GetLog(ctx, "u1", core.LogQuery{})
				Expect(err).NotTo(HaveOccurred())
				Expect(log).To(HaveLen(3))
				Expect(log[0].Description).To(Equal("d3"))
				Expect(log[1].Description).To(Equal("d1"))
				Expect(log[2].Description).To(Equal("d2"))
				Expect(log[0].Date).To(Equal(day(3)))
			})
		})

		It("should filter before limiting", func() {
			withMock(func(mt *mtest.T, store *mongostore.Store) {
				mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch, logged()))

				log, err := store.GetLog(ctx, "u1", core.NewLogQuery("2023-01-02", "", "1"))
				Expect(err).NotTo(HaveOccurred())
				Expect(log).To(HaveLen(1))
				Expect(log[0].Description).To(Equal("d3"))
			})
		})

		When("user is unknown", func() {
			It("should return not found", func() {
				withMock(func(mt *mtest.T, store *mongostore.Store) {
					mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch))

					_, err := store.GetLog(ctx, "missing", core.LogQuery{})
					Expect(err).To(MatchError(core.ErrUserNotFound))
				})
			})
		})
	})

	Describe("EnsureIndexes", func() {
		It("should create the indexes", func() {
			withMock(func(mt *mtest.T, store *mongostore.Store) {
				mt.AddMockResponses(mtest.CreateSuccessResponse())

				Expect(store.EnsureIndexes(ctx)).To(Succeed())

				started := mt.GetStartedEvent()
				Expect(started).NotTo(BeNil())
				Expect(started.CommandName).To(Equal("createIndexes"))
			})
		})
	})
})
